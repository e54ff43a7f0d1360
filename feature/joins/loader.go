package joins

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service  *Service
	handler  *Handler
	recorder *Recorder
}

// NewFeature creates the join log feature. db may be nil, in which case
// attributions are only logged and the routes are not mounted.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	var repo *Repository
	if db != nil {
		repo = NewRepository(db)
	}
	svc := NewService(repo, logger)
	return &Feature{
		service:  svc,
		handler:  NewHandler(svc),
		recorder: NewRecorder(repo, logger),
	}
}

// Recorder returns the sink for the gateway adapter.
func (f *Feature) Recorder() *Recorder {
	return f.recorder
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "joins"
}

// IsEnabled reports whether a database backs the join log.
func (f *Feature) IsEnabled() bool {
	return f.service.repo != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
