package nemdeling

import (
	"display-sync/core/displayapi"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg     Config
	service *Service
	handler *Handler
}

// NewFeature creates a new NemDeling feature.
func NewFeature(client displayapi.Client, logger *zap.Logger, cfg Config) *Feature {
	svc := NewService(client, logger, cfg)
	h := NewHandler(svc)
	return &Feature{cfg: cfg, service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "nemdeling"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
