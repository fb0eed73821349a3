package routes

import (
	"github.com/gofiber/fiber/v2"

	"blogbase/internal/controllers"
	"blogbase/internal/middleware"
	"blogbase/internal/repository"
	"blogbase/internal/services"
)

// SetupAuth registers the public auth routes plus the session-guarded logout.
func SetupAuth(app *fiber.App, auth *services.AuthService, users repository.UserStore) {
	h := &controllers.AuthHandler{Auth: auth}

	grp := app.Group("/auth")
	grp.Post("/signup", h.Signup)
	grp.Post("/login", h.Login)
	grp.Post("/logout", middleware.RequireSession(auth, users), h.Logout)
}
