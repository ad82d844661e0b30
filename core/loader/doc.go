// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which reports whether its
// dependencies are available and registers its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features:
//   - Register() adds a feature
//   - LoadAll() loads enabled features in registration order and skips the rest
//
// Features like 'agent' or 'activity' switch themselves off when their API key or
// database is missing, so the server still starts with storage alone.
package loader
