package middleware

import (
	"github.com/gofiber/fiber/v2"

	"blogbase/internal/apperr"
	"blogbase/internal/repository"
	"blogbase/internal/services"
)

// SessionCookie is the HTTP-only cookie carrying the signed session token.
// Cookie transport only; bearer headers are not accepted.
const SessionCookie = "token"

// RequireSession verifies the session cookie and resolves the user it is
// bound to. Requests without a valid session never reach the handler.
func RequireSession(auth *services.AuthService, users repository.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(SessionCookie)
		if tokenStr == "" {
			return apperr.New(apperr.Auth, "missing session")
		}

		uid, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return err
		}

		// The token may outlive the account.
		user, err := users.FindByID(c.Context(), uid)
		if err != nil {
			if apperr.IsKind(err, apperr.NotFound) {
				return apperr.New(apperr.Auth, "invalid or expired session")
			}
			return err
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}
