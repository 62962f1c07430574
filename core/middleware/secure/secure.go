package secure

import "github.com/gofiber/fiber/v2"

// Header is a single response header injected by the middleware.
type Header struct {
	Name  string
	Value string
}

// DefaultHeaders are set on every response.
var DefaultHeaders = []Header{
	{Name: "X-Content-Type-Options", Value: "nosniff"},
	{Name: "X-Frame-Options", Value: "DENY"},
	{Name: "X-XSS-Protection", Value: "1; mode=block"},
}

// Config holds the headers to inject.
type Config struct {
	Headers []Header
}

// New creates the security header middleware. Headers are written after the
// rest of the chain has run, so they survive handlers that reset the response.
// Error responses keep them too: fiber's error handler does not clear headers.
func New(config ...Config) fiber.Handler {
	headers := DefaultHeaders
	if len(config) > 0 && config[0].Headers != nil {
		headers = config[0].Headers
	}

	return func(c *fiber.Ctx) error {
		err := c.Next()
		apply(c, headers)
		return err
	}
}

// ErrorHandler is a fiber.ErrorHandler that adds DefaultHeaders before
// delegating to fiber.DefaultErrorHandler. fasthttp reports malformed or
// oversized requests straight to the error handler, skipping middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	apply(c, DefaultHeaders)
	return fiber.DefaultErrorHandler(c, err)
}

func apply(c *fiber.Ctx, headers []Header) {
	for _, h := range headers {
		c.Set(h.Name, h.Value)
	}
}
