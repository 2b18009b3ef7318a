package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// FakeLatencyMiddleware delays every request by d. Only mounted in
// development, to exercise loading states in the front end.
func FakeLatencyMiddleware(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d > 0 {
			select {
			case <-time.After(d):
			case <-c.Context().Done():
			}
		}
		return c.Next()
	}
}
