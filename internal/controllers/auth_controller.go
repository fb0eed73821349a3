package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"blogbase/dto"
	"blogbase/internal/apperr"
	"blogbase/internal/middleware"
	"blogbase/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})
}

// Signup godoc
// @Summary      Create a user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignupReq  true  "Signup payload"
// @Success      201   {object}  dto.SignupResp
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.Validation, "invalid body")
	}

	user, err := h.Auth.Signup(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignupResp{
		Message: "user created successfully",
		Data:    user.Public(),
	})
}

// Login godoc
// @Summary      Log in and receive a session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginReq  true  "Login payload"
// @Success      200   {object}  dto.LoginResp
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.Validation, "invalid body")
	}

	token, err := h.Auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token, time.Now().Add(h.Auth.TTL))
	return c.JSON(dto.LoginResp{Message: "login successful"})
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginResp
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Expire the cookie client-side; there is no server-side token state.
	h.setSessionCookie(c, "", time.Now().Add(-time.Hour))
	return c.JSON(dto.LoginResp{Message: "logout successful"})
}
