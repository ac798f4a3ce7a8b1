package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is the interface every application feature implements.
type Feature interface {
	// Name returns the feature name, used for logging.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes on the (protected) router.
	Load(app fiber.Router) error
}

// PublicFeature is implemented by features that also expose routes which must
// bypass API-key auth (e.g. webhook endpoints).
type PublicFeature interface {
	// LoadPublic registers the feature's unauthenticated routes.
	LoadPublic(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the registry.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadPublicAll registers the public routes of all enabled features.
// It must run before auth middleware is attached to the app.
func (m *Manager) LoadPublicAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		pf, ok := f.(PublicFeature)
		if !ok {
			continue
		}
		if err := pf.LoadPublic(app); err != nil {
			return fmt.Errorf("failed to load public routes of feature %s: %w", f.Name(), err)
		}
	}
	return nil
}

// LoadAll initializes and loads all enabled features.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
	}
	return nil
}
