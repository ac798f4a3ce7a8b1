package gallery

import (
	"gallery-manager/core/config"
	"gallery-manager/core/storage"
	"gallery-manager/feature/gallery/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature and loader.PublicFeature interfaces.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the gallery feature.
func NewFeature(client storage.Client, st *store.Store, cfg *config.Config, logger *zap.Logger) *Feature {
	svc := NewService(client, st, cfg.Storage, cfg.Exif, logger)
	h := NewHandler(svc, cfg.Server.WebhookSecret)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "gallery"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's authenticated routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// LoadPublic registers the webhook routes, which carry their own secret and
// must stay reachable without an API key.
func (f *Feature) LoadPublic(app fiber.Router) error {
	f.handler.RegisterPublicRoutes(app)
	return nil
}
