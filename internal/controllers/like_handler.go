package controllers

import (
	"github.com/gofiber/fiber/v2"

	"blogbase/cache"
	"blogbase/dto"
	"blogbase/internal/middleware"
	"blogbase/internal/repository"
)

type LikeHandler struct {
	Posts repository.PostStore
	Cache *cache.LikeCountCache
}

// Toggle godoc
// @Summary      Toggle a like on a post
// @Description  Adds the like if absent, removes it if present. Idempotent per user pair of calls.
// @Tags         likes
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.ToggleLikeResp
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/like [patch]
func (h *LikeHandler) Toggle(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	post, err := h.Posts.ToggleLike(c.Context(), postID, uid)
	if err != nil {
		return err
	}

	h.Cache.Invalidate(c.Context(), postID.Hex())

	liked := post.LikedBy(uid)
	msg := "liked"
	if !liked {
		msg = "unliked"
	}
	return c.JSON(dto.ToggleLikeResp{
		Message:   msg,
		Liked:     liked,
		LikeCount: post.LikeCount(),
	})
}

// Count godoc
// @Summary      Like count of a post
// @Tags         likes
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.LikeCountResp
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/likes/count [get]
func (h *LikeHandler) Count(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if n, ok := h.Cache.Get(c.Context(), postID.Hex()); ok {
		return c.JSON(dto.LikeCountResp{LikeCount: n})
	}

	post, err := h.Posts.Get(c.Context(), postID)
	if err != nil {
		return err
	}

	n := post.LikeCount()
	h.Cache.Set(c.Context(), postID.Hex(), n)
	return c.JSON(dto.LikeCountResp{LikeCount: n})
}
