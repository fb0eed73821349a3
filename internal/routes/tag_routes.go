package routes

import (
	"github.com/gofiber/fiber/v2"

	"blogbase/internal/controllers"
	"blogbase/internal/repository"
)

func TagRoutes(app *fiber.App, posts repository.PostStore) {
	h := &controllers.TagHandler{Posts: posts}

	app.Get("/tags/trending", h.Trending)
}
