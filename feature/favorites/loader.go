package favorites

import (
	"leetcode-tracker/core/leetcode"
	"leetcode-tracker/core/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new favorites feature.
func NewFeature(fetcher leetcode.Fetcher, baseURL string, report snapshot.Config, logger *zap.Logger) *Feature {
	svc := NewService(fetcher, baseURL, report, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "favorites"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.fetcher != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
