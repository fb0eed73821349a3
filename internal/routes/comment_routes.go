package routes

import (
	"github.com/gofiber/fiber/v2"

	"blogbase/internal/controllers"
	"blogbase/internal/repository"
)

func CommentRoutes(app *fiber.App, posts repository.PostStore) {
	h := &controllers.CommentHandler{Posts: posts}

	grp := app.Group("/posts")
	grp.Post("/:id/comments", h.Create)
	grp.Get("/:id/comments", h.List)
	grp.Delete("/:id/comments/:commentId", h.Delete)
}
