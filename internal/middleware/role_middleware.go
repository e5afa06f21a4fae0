package middleware

import "github.com/gofiber/fiber/v2"

// Role allows the request through only when the principal's role is in the
// allowed set. Must run after Auth.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := GetPrincipal(c)

		for _, role := range allowedRoles {
			if role == principal.Role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
	}
}
