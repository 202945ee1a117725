package objects

import (
	"filestorage/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature mounts the object routes.
type Feature struct {
	handler *Handler
}

// NewFeature creates the objects feature around a shared engine.
func NewFeature(engine *storage.Engine, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(engine, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "objects"
}

// IsEnabled reports whether the feature should be loaded. Serving objects is
// the whole point of the process, so it always is.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
