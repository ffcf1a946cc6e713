package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dental_backend/pkg/reqctx"
)

// errorBody is the error shape the admin dashboard expects.
type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

func ok(c fiber.Ctx, data any) error {
	return c.JSON(data)
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func noContent(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func fail(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorBody{
		StatusCode: status,
		Message:    msg,
		Error:      fiber.NewError(status).Message,
	})
}

func badRequest(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusBadRequest, msg)
}

func notFound(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusNotFound, msg)
}

func internalError(c fiber.Ctx, err error) error {
	slog.ErrorContext(c.Context(), "request failed", append(reqctx.LogAttrs(c.Context()),
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)...)
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

// ErrorHandler renders errors that escape handlers, such as unknown routes
// and panics caught by the recover middleware, in the same shape.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fail(c, fe.Code, fe.Message)
	}
	return internalError(c, err)
}
