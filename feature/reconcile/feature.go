package reconcile

import (
	"outfit-picker/core/store"
	"outfit-picker/core/wardrobe"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the reconcile service into the application loader.
type Feature struct {
	service *Service
	logger  *zap.Logger
}

// NewFeature creates the reconcile feature.
func NewFeature(cfg store.ConfigStore, state store.StateStore, lister wardrobe.Lister, ext string, logger *zap.Logger) *Feature {
	return &Feature{
		service: NewService(cfg, state, lister, ext, logger),
		logger:  logger,
	}
}

func (f *Feature) Name() string { return "reconcile" }

func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service, f.logger).RegisterRoutes(app)
	return nil
}
