package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "elevencentral_backend/internals/helpers"
)

// OnlyRolesSlice allows access when the user holds one of the given roles.
func OnlyRolesSlice(message string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Role not found")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return helper.JsonError(c, fiber.StatusForbidden, message)
	}
}
