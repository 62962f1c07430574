package static

import (
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves files below a root directory.
type Handler struct {
	root   string
	logger *zap.Logger
}

// NewHandler creates a handler for root, which must be an absolute directory.
func NewHandler(root string, logger *zap.Logger) *Handler {
	return &Handler{root: root, logger: logger}
}

// RegisterRoutes mounts the file server at "/" for GET and HEAD.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Static("/", h.root, fiber.Static{
		ByteRange:      true,
		Browse:         true,
		Index:          "index.html",
		CacheDuration:  -1 * time.Second,
		ModifyResponse: h.setContentType,
	})
	h.logger.Debug("Static files mounted", zap.String("root", h.root))
}

// setContentType runs after a file has been found and replaces the
// Content-Type chosen by the file server when an override applies.
// Content-Encoding is left as the file server set it.
func (h *Handler) setContentType(c *fiber.Ctx) error {
	p := h.servedPath(string(c.Request().URI().Path()))
	current := string(c.Response().Header.ContentType())
	if current == "" {
		current = DefaultType(p)
	}
	if resolved := ResolveType(p, current); resolved != current {
		c.Set(fiber.HeaderContentType, resolved)
	}
	return nil
}

// servedPath maps a request path to the file actually sent: directories are
// answered with their index page (or a listing, which is HTML as well).
func (h *Handler) servedPath(p string) string {
	info, err := os.Stat(filepath.Join(h.root, filepath.FromSlash(p)))
	if err == nil && info.IsDir() {
		return path.Join(p, "index.html")
	}
	return p
}
