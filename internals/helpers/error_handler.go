// internals/helpers/error_handler.go
package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"elevencentral_backend/internals/apierr"
)

// ErrorHandler is the single place errors become response envelopes.
// Wired into fiber.Config.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		if apiErr.Err != nil {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), apiErr.Err)
		}
		return JsonErrorWithCode(c, apiErr.Status, apiErr.Code, apiErr.Message, apiErr.Details)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return JsonError(c, fiberErr.Code, fiberErr.Message)
	}

	log.Printf("[ERROR] %s %s: unhandled: %v", c.Method(), c.Path(), err)
	return JsonError(c, fiber.StatusInternalServerError, "internal server error")
}
