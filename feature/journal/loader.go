package journal

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	recorder *GormRecorder
	handler  *Handler
}

// NewFeature creates the journal feature. A nil recorder disables it.
func NewFeature(recorder *GormRecorder, logger *zap.Logger) *Feature {
	f := &Feature{recorder: recorder}
	if recorder != nil {
		f.handler = NewHandler(recorder, logger)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "journal"
}

// IsEnabled reports whether a database backs the journal.
func (f *Feature) IsEnabled() bool {
	return f.recorder != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
