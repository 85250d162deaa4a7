package middleware

import (
	"strings"

	"boutique/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Locals keys under which the verified identity is stored for handlers.
const (
	LocalAccountID = "account_id"
	LocalRole      = "role"
)

// AuthRequired is a Fiber middleware that verifies the bearer session
// token and stores the decoded identity in the request context. It
// short-circuits with 401 before any handler logic runs.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token provided.",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token.",
			})
		}

		c.Locals(LocalAccountID, claims.AccountID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// AdminRequired enforces the admin role. It must run after AuthRequired;
// authentication and authorization stay separate, composable checks.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		if role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied. Admins only.",
			})
		}
		return c.Next()
	}
}

// AccountID returns the verified account id stored by AuthRequired.
func AccountID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalAccountID).(string)
	return id
}
