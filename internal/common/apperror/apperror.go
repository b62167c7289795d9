package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a domain failure with the HTTP status it should surface as.
// Services return these; controllers hand them to Respond.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

// StatusCode extracts the HTTP status for err, defaulting to 500.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// Respond writes err as the standard {"error": ...} JSON body.
func Respond(ctx *fiber.Ctx, err error) error {
	return ctx.Status(StatusCode(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
