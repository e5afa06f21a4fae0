package middleware

import (
	"strings"

	"hr-portal-backend/config"
	"hr-portal-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// Auth validates the bearer token and resolves it into a domain.Principal
// stored in the request locals. Handlers read the principal through
// GetPrincipal and never re-derive identity from the request body.
func Auth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return config.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	id, ok := claims["employee_id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	c.Locals(principalKey, domain.Principal{
		EmployeeID: uint(id),
		Email:      email,
		Role:       role,
	})
	return c.Next()
}

// GetPrincipal returns the principal resolved by Auth. Calling it on a route
// that is not behind Auth returns the zero principal.
func GetPrincipal(c *fiber.Ctx) domain.Principal {
	p, _ := c.Locals(principalKey).(domain.Principal)
	return p
}
