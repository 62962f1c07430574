package serial

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// New creates a middleware that lets one request through the rest of the
// chain at a time. Connections are still accepted concurrently.
func New() fiber.Handler {
	var mu sync.Mutex
	return func(c *fiber.Ctx) error {
		mu.Lock()
		defer mu.Unlock()
		return c.Next()
	}
}
