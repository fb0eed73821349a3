package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogbase/dto"
	"blogbase/internal/apperr"
	"blogbase/internal/models"
	"blogbase/internal/utils"
)

// IsOwner is the single ownership predicate used by every author-only
// mutation on posts and comments.
func IsOwner(resourceAuthor, requester bson.ObjectID) bool {
	return resourceAuthor == requester
}

// ValidateCreatePost checks the payload and trims title and content in
// place, so titles differing only by whitespace still collide on the
// (author, title) index.
func ValidateCreatePost(req *dto.CreatePostReq) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if req.Title == "" {
		return apperr.New(apperr.Validation, "title is required")
	}
	if req.Content == "" {
		return apperr.New(apperr.Validation, "content is required")
	}
	if req.Image != "" && !utils.IsImageURL(req.Image) {
		return apperr.New(apperr.Validation, "image must be an http(s) URL")
	}
	return nil
}

// ParsePostPatch decodes an update body, rejecting any field outside the
// {title, content, tags, image} allow-list.
func ParsePostPatch(body []byte) (models.PostPatch, error) {
	var patch models.PostPatch

	var req dto.UpdatePostReq
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return patch, apperr.New(apperr.Validation, "body contains invalid or unknown fields")
	}

	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return patch, apperr.New(apperr.Validation, "title cannot be empty")
		}
		patch.Title = &t
	}
	if req.Content != nil {
		c := strings.TrimSpace(*req.Content)
		if c == "" {
			return patch, apperr.New(apperr.Validation, "content cannot be empty")
		}
		patch.Content = &c
	}
	if req.Image != nil {
		if *req.Image != "" && !utils.IsImageURL(*req.Image) {
			return patch, apperr.New(apperr.Validation, "image must be an http(s) URL")
		}
		patch.Image = req.Image
	}
	if req.Tags != nil {
		patch.Tags = req.Tags
	}

	if patch.Empty() {
		return patch, apperr.New(apperr.Validation, "no updatable fields in body")
	}
	return patch, nil
}

// PostResponse resolves the author to public fields for API output.
func PostResponse(post *models.Post, author models.PublicUser) dto.PostResp {
	return dto.PostResp{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Image:     post.Image,
		Tags:      post.Tags,
		Author:    author,
		LikeCount: post.LikeCount(),
		Comments:  post.Comments,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
