// Package apperr is the error taxonomy shared by repositories, services and
// handlers. Every error that crosses a handler boundary is mapped to an HTTP
// status by Handler, so route code never builds status responses by hand.
package apperr

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	Internal Kind = iota
	Validation
	Auth
	Forbidden
	NotFound
	Conflict
	Unavailable
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

func Status(kind Kind) int {
	switch kind {
	case Validation:
		return fiber.StatusBadRequest
	case Auth:
		return fiber.StatusUnauthorized
	case Forbidden:
		return fiber.StatusForbidden
	case NotFound:
		return fiber.StatusNotFound
	case Conflict:
		return fiber.StatusConflict
	case Unavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

type errorBody struct {
	Message string `json:"message"`
}

// Handler is the single error boundary, installed as fiber.Config.ErrorHandler.
// Internal errors are logged and replaced with a generic message so driver and
// query details never reach the client.
func Handler(c *fiber.Ctx, err error) error {
	var ae *Error
	if errors.As(err, &ae) {
		status := Status(ae.Kind)
		if status == fiber.StatusInternalServerError {
			log.Printf("internal error: %v", ae)
			return c.Status(status).JSON(errorBody{Message: "internal server error"})
		}
		return c.Status(status).JSON(errorBody{Message: ae.Message})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(errorBody{Message: fe.Message})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Message: "internal server error"})
}
