package dto

import (
	"blogbase/internal/models"
)

type CreateCommentReq struct {
	Text string `json:"text"`
}

type CommentListResp struct {
	Comments []models.Comment `json:"comments"`
}

type ListCommentsResp struct {
	Comments      []models.Comment `json:"comments"`
	Page          int              `json:"page"`
	Limit         int              `json:"limit"`
	TotalComments int              `json:"totalComments"`
	TotalPages    int              `json:"totalPages"`
}
