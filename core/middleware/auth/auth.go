// Package auth protects routes behind a shared API key.
package auth

import "github.com/gofiber/fiber/v2"

// Config holds the middleware settings.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check so
	// local development works without credentials.
	ApiKey string
}

// Header carries the API key on requests.
const Header = "X-API-Key"

// New returns a middleware that rejects requests without the configured key.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(Header) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		return c.Next()
	}
}
