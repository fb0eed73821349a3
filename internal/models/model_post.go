package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment lives embedded in its post document. Text is immutable after
// creation; comments are only added or deleted.
type Comment struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	Author    bson.ObjectID `bson:"author" json:"author"`
	Text      string        `bson:"text" json:"text"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}

type Post struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title     string          `bson:"title" json:"title"`
	Content   string          `bson:"content" json:"content"`
	Image     string          `bson:"image,omitempty" json:"image,omitempty"`
	Tags      []string        `bson:"tags" json:"tags"`
	Author    bson.ObjectID   `bson:"author" json:"author"`
	Likes     []bson.ObjectID `bson:"likes" json:"likes"`
	Comments  []Comment       `bson:"comments" json:"comments"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updatedAt"`
}

func (p Post) LikeCount() int { return len(p.Likes) }

// LikedBy reports membership of uid in the likes set.
func (p Post) LikedBy(uid bson.ObjectID) bool {
	for _, id := range p.Likes {
		if id == uid {
			return true
		}
	}
	return false
}

// ListFilter is the post-listing query after parsing and author-name
// resolution. Zero values mean "no constraint".
type ListFilter struct {
	Search    string
	Tags      []string
	AuthorIDs []bson.ObjectID
	MinLikes  int
}

// PostPatch carries the allow-listed update fields. Nil means "leave as is".
type PostPatch struct {
	Title   *string
	Content *string
	Image   *string
	Tags    *[]string
}

func (p PostPatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Image == nil && p.Tags == nil
}

type TagCount struct {
	Tag   string `bson:"_id" json:"tag"`
	Count int    `bson:"count" json:"count"`
}
