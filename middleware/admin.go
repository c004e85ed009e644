package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired guards the dashboard and export endpoints with a shared key
// header. An empty configured key disables the admin surface entirely.
func AdminRequired(adminKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if adminKey == "" {
			return c.Status(403).JSON(fiber.Map{"error": "admin access disabled"})
		}
		key := c.Get("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) != 1 {
			return c.Status(401).JSON(fiber.Map{"error": "invalid admin key"})
		}
		return c.Next()
	}
}
