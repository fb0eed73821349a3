package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogbase/internal/apperr"
	"blogbase/internal/models"
	"blogbase/internal/utils"
)

type PostRepository struct {
	Col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{Col: db.Collection("posts")}
}

func regexQuote(s string) string { return regexp.QuoteMeta(s) }

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	now := time.Now().UTC()
	post.ID = bson.NewObjectID()
	post.Tags = utils.NormalizeTags(post.Tags)
	if post.Likes == nil {
		post.Likes = []bson.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.Col.InsertOne(ctx, post); err != nil {
		if isDup(err) {
			return apperr.New(apperr.Conflict, "a post with this title already exists")
		}
		return storeErr("insert post", err)
	}
	return nil
}

func (r *PostRepository) Get(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	var post models.Post
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		return nil, storeErr("find post", err)
	}
	return &post, nil
}

// Update patches the allow-listed fields. The author is part of the filter so
// the ownership check holds even if the post changed hands between the
// handler's read and this write.
func (r *PostRepository) Update(ctx context.Context, id, author bson.ObjectID, patch models.PostPatch) (*models.Post, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Tags != nil {
		set["tags"] = utils.NormalizeTags(*patch.Tags)
	}

	var post models.Post
	err := r.Col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "author": author},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		if isDup(err) {
			return nil, apperr.New(apperr.Conflict, "a post with this title already exists")
		}
		return nil, storeErr("update post", err)
	}
	return &post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete post", err)
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "post not found")
	}
	// Comments are embedded, so they are gone with the document.
	return nil
}

func buildListFilter(f models.ListFilter) bson.M {
	filter := bson.M{}
	if f.Search != "" {
		q := regexQuote(f.Search)
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": q, "$options": "i"}},
			{"content": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	if len(f.Tags) > 0 {
		filter["tags"] = bson.M{"$in": f.Tags}
	}
	if len(f.AuthorIDs) > 0 {
		filter["author"] = bson.M{"$in": f.AuthorIDs}
	}
	if f.MinLikes > 0 {
		filter["$expr"] = bson.M{"$gte": bson.A{
			bson.M{"$size": bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}},
			f.MinLikes,
		}}
	}
	return filter
}

func (r *PostRepository) List(ctx context.Context, f models.ListFilter, page, limit int) ([]models.Post, int, error) {
	filter := buildListFilter(f)

	total, err := r.Col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, storeErr("count posts", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, storeErr("find posts", err)
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, 0, storeErr("decode posts", err)
	}
	return posts, int(total), nil
}

// TrendingTags counts tag usage across all posts and returns the top entries.
func (r *PostRepository) TrendingTags(ctx context.Context, limit int) ([]models.TagCount, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$tags"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tags"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cur, err := r.Col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, storeErr("aggregate trending tags", err)
	}
	defer cur.Close(ctx)

	tags := []models.TagCount{}
	if err := cur.All(ctx, &tags); err != nil {
		return nil, storeErr("decode trending tags", err)
	}
	return tags, nil
}
