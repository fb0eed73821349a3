package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogbase/internal/models"
)

type CreatePostReq struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Image   string   `json:"image,omitempty"`
	Tags    []string `json:"tags"`
}

// UpdatePostReq is decoded from raw JSON by the handler so unknown fields can
// be rejected; only this allow-list is patchable.
type UpdatePostReq struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Image   *string   `json:"image,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

// PostResp is a post with its author resolved to public fields.
type PostResp struct {
	ID        bson.ObjectID     `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Image     string            `json:"image,omitempty"`
	Tags      []string          `json:"tags"`
	Author    models.PublicUser `json:"author"`
	LikeCount int               `json:"likeCount"`
	Comments  []models.Comment  `json:"comments"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type ToggleLikeResp struct {
	Message   string `json:"message"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"likeCount"`
}

type LikeCountResp struct {
	LikeCount int `json:"likeCount"`
}

type TrendingTag struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type TrendingTagsResp struct {
	Tags []TrendingTag `json:"tags"`
}
