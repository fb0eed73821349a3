package routes

import (
	"github.com/gofiber/fiber/v2"

	"blogbase/internal/controllers"
	"blogbase/internal/repository"
)

func SetupRoutesPost(app *fiber.App, posts repository.PostStore, users repository.UserStore) {
	h := &controllers.PostHandler{Posts: posts, Users: users}

	grp := app.Group("/posts")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}
