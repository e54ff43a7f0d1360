// Package loader provides the plugin-like feature loading system.
//
// It allows the application to register and initialize HTTP features (modules).
// Each feature implements the Feature interface, which defines its name,
// whether it is enabled and its route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Initialization and loading of enabled features via LoadAll()
//
// The inspection API registers the 'invites' and 'joins' features here. Disabled
// features are logged and skipped.
package loader
