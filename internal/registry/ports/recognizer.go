package ports

import (
	"context"
	"image"

	"facereg/internal/registry/models"
)

// Recognizer is the biometric capability a registry depends on. One recognizer
// serves exactly one template version.
//
// The registry never inspects templates itself: extraction and scoring are
// delegated here so that any algorithm can back a registry.
type Recognizer interface {
	// Version identifies the algorithm; every template it produces carries it.
	Version() string

	// ExtractTemplates returns exactly one template per face, in face order.
	ExtractTemplates(ctx context.Context, faces []models.Face, img image.Image) ([]models.Template, error)

	// CompareTemplates scores candidate against every template in pool.
	// Scores align positionally with pool; higher means more similar.
	CompareTemplates(ctx context.Context, pool []models.Template, candidate models.Template) ([]float64, error)

	// Close releases recognizer resources. Called once by the owning registry.
	Close() error
}
