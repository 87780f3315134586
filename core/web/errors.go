package web

import (
	"errors"

	"github.com/Kappa-h/fibulopedia/core/content"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a service error to an HTTP status code. Content load
// failures surface as 503 so the page reports the broken file rather than a
// generic server error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, content.ErrMissing),
		errors.Is(err, content.ErrMalformed),
		errors.Is(err, content.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// Error writes the standard JSON error body with the mapped status.
func Error(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

// BadRequest writes a 400 JSON error body.
func BadRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
