// internals/middlewares/timeout_middleware.go
package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestTimeout caps how long downstream DB work may take. Handlers that
// do blocking calls derive from c.UserContext().
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
