package static

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the static file feature for root.
func NewFeature(root string, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(root, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled reports whether a root directory was given.
func (f *Feature) IsEnabled() bool {
	return f.handler.root != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
