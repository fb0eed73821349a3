package controllers

import (
	"github.com/gofiber/fiber/v2"

	"blogbase/dto"
	"blogbase/internal/repository"
)

type TagHandler struct {
	Posts repository.PostStore
}

// Trending godoc
// @Summary      Most used tags across posts
// @Tags         tags
// @Produce      json
// @Param        limit  query  int  false  "Max tags to return"  default(10)
// @Success      200  {object}  dto.TrendingTagsResp
// @Router       /tags/trending [get]
func (h *TagHandler) Trending(c *fiber.Ctx) error {
	limit := repository.ClampLimit(c.QueryInt("limit", 0), 10, 50)

	counts, err := h.Posts.TrendingTags(c.Context(), limit)
	if err != nil {
		return err
	}

	tags := make([]dto.TrendingTag, 0, len(counts))
	for _, tc := range counts {
		tags = append(tags, dto.TrendingTag{Tag: tc.Tag, Count: tc.Count})
	}
	return c.JSON(dto.TrendingTagsResp{Tags: tags})
}
