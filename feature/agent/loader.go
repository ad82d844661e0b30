package agent

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	agent   *Agent
	handler *Handler
}

// NewFeature creates the agent feature. The chat route is mounted even without
// an agent so callers get a 503 instead of a 404.
func NewFeature(agent *Agent, logger *zap.Logger) *Feature {
	return &Feature{agent: agent, handler: NewHandler(agent, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "agent"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Initialized reports whether an agent is available.
func (f *Feature) Initialized() bool {
	return f.agent != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
