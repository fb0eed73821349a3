package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogbase/config"
	"blogbase/dto"
	"blogbase/internal/apperr"
	"blogbase/internal/middleware"
	"blogbase/internal/models"
	"blogbase/internal/repository"
)

type CommentHandler struct {
	Posts repository.PostStore
}

// Create godoc
// @Summary      Add a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Post ID (hex)"
// @Param        body  body      dto.CreateCommentReq  true  "Comment payload"
// @Success      201   {object}  dto.CommentListResp
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return apperr.New(apperr.Validation, "invalid body")
	}

	text := strings.TrimSpace(body.Text)
	if text == "" {
		return apperr.New(apperr.Validation, "comment text is required")
	}

	comments, err := h.Posts.AddComment(c.Context(), postID, models.Comment{
		Author: uid,
		Text:   text,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommentListResp{Comments: comments})
}

// List godoc
// @Summary      Paginated comments of a post
// @Tags         comments
// @Produce      json
// @Param        id     path   string  true   "Post ID (hex)"
// @Param        page   query  int     false  "Page (1-based)"
// @Param        limit  query  int     false  "Page size, clamped to 10"
// @Success      200  {object}  dto.ListCommentsResp
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	page := repository.NormalizePage(c.QueryInt("page", 1))
	limit := repository.ClampLimit(c.QueryInt("limit", 0), config.DefaultLimitComments, config.MaxLimitComments)

	post, err := h.Posts.Get(c.Context(), postID)
	if err != nil {
		return err
	}

	// Comments are embedded, so the page is a slice of the loaded document.
	total := len(post.Comments)
	return c.JSON(dto.ListCommentsResp{
		Comments:      repository.PageSlice(post.Comments, page, limit),
		Page:          page,
		Limit:         limit,
		TotalComments: total,
		TotalPages:    repository.TotalPages(total, limit),
	})
}

// Delete godoc
// @Summary      Delete a comment (comment author only)
// @Tags         comments
// @Produce      json
// @Param        id         path  string  true  "Post ID (hex)"
// @Param        commentId  path  string  true  "Comment ID (hex)"
// @Success      200  {object}  dto.CommentListResp
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}
	commentID, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return apperr.New(apperr.Validation, "invalid comment id")
	}

	comments, err := h.Posts.DeleteComment(c.Context(), postID, commentID, uid)
	if err != nil {
		return err
	}
	return c.JSON(dto.CommentListResp{Comments: comments})
}
