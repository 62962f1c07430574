package secure_test

import (
	"net/http/httptest"
	"testing"

	"static-server/core/middleware/secure"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDefaultHeaders(t *testing.T, get func(string) string) {
	t.Helper()
	assert.Equal(t, "nosniff", get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", get("X-XSS-Protection"))
}

func TestNew_Success(t *testing.T) {
	app := fiber.New()
	app.Use(secure.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assertDefaultHeaders(t, resp.Header.Get)
}

func TestNew_NotFound(t *testing.T) {
	app := fiber.New()
	app.Use(secure.New())

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assertDefaultHeaders(t, resp.Header.Get)
}

func TestNew_HandlerResetsResponse(t *testing.T) {
	app := fiber.New()
	app.Use(secure.New())
	app.Get("/", func(c *fiber.Ctx) error {
		c.Response().Reset()
		return fiber.ErrForbidden
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
	assertDefaultHeaders(t, resp.Header.Get)
}

func TestNew_CustomHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(secure.New(secure.Config{Headers: []secure.Header{{Name: "X-Test", Value: "1"}}}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(204)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "1", resp.Header.Get("X-Test"))
	assert.Empty(t, resp.Header.Get("X-Frame-Options"))
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: secure.ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error {
		return fiber.ErrBadRequest
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assertDefaultHeaders(t, resp.Header.Get)
}
