package routes

import (
	"github.com/gofiber/fiber/v2"

	"blogbase/cache"
	"blogbase/internal/controllers"
	"blogbase/internal/repository"
)

func LikeRoutes(app *fiber.App, posts repository.PostStore, likeCache *cache.LikeCountCache) {
	h := &controllers.LikeHandler{Posts: posts, Cache: likeCache}

	grp := app.Group("/posts")
	grp.Patch("/:id/like", h.Toggle)
	grp.Get("/:id/likes/count", h.Count)
}
