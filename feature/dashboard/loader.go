package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	dir     string
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates the dashboard feature for the files in dir.
func NewFeature(dir string, logger *zap.Logger) *Feature {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feature{dir: dir, handler: NewHandler(dir), logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "dashboard"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.dir != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	f.logger.Info("Serving dashboard", zap.String("dir", f.dir))
	return nil
}
