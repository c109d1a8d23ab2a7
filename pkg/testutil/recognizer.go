package testutil

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"facereg/internal/registry/models"
)

// ScalarTemplate is a one-dimensional template. Two scalar templates score
// max(0, 1-|a-b|), which makes expected scores easy to reason about in tests.
type ScalarTemplate struct {
	Value float64
	Ver   string
}

func (t ScalarTemplate) Version() string { return t.Ver }

// ScalarImage carries one scalar per detected face, in face order.
type ScalarImage struct {
	Values []float64
}

func (ScalarImage) ColorModel() color.Model { return color.GrayModel }
func (ScalarImage) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }
func (ScalarImage) At(int, int) color.Color { return color.Gray{} }

// Probe returns a single face and the image that encodes value for it.
func Probe(value float64) (models.Face, image.Image) {
	return models.Face{Bounds: image.Rect(0, 0, 1, 1), Quality: 1}, ScalarImage{Values: []float64{value}}
}

// ScalarTemplates tags values as "User 0", "User 1", ... in order.
func ScalarTemplates(version string, values ...float64) []models.TaggedTemplate {
	result := make([]models.TaggedTemplate, len(values))
	for i, v := range values {
		result[i] = models.TaggedTemplate{
			Template:   ScalarTemplate{Value: v, Ver: version},
			Identifier: fmt.Sprintf("User %d", i),
		}
	}
	return result
}

// Tag builds a tagged scalar template.
func Tag(version string, value float64, identifier string) models.TaggedTemplate {
	return models.TaggedTemplate{Template: ScalarTemplate{Value: value, Ver: version}, Identifier: identifier}
}

// ScalarRecognizer is a deterministic recognizer over ScalarTemplate values.
type ScalarRecognizer struct {
	version string

	mu         sync.Mutex
	extractErr error
	compareErr error
	closeCalls int
}

func NewScalarRecognizer(version string) *ScalarRecognizer {
	return &ScalarRecognizer{version: version}
}

func (r *ScalarRecognizer) Version() string { return r.version }

// FailExtract makes every later extraction return err.
func (r *ScalarRecognizer) FailExtract(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractErr = err
}

// FailCompare makes every later comparison return err.
func (r *ScalarRecognizer) FailCompare(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.compareErr = err
}

// CloseCalls reports how many times Close was called.
func (r *ScalarRecognizer) CloseCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closeCalls
}

func (r *ScalarRecognizer) ExtractTemplates(_ context.Context, faces []models.Face, img image.Image) ([]models.Template, error) {
	r.mu.Lock()
	err := r.extractErr
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	sample, ok := img.(ScalarImage)
	if !ok {
		return nil, fmt.Errorf("unsupported image %T", img)
	}
	if len(sample.Values) != len(faces) {
		return nil, fmt.Errorf("image carries %d values for %d faces", len(sample.Values), len(faces))
	}
	templates := make([]models.Template, len(faces))
	for i, v := range sample.Values {
		templates[i] = ScalarTemplate{Value: v, Ver: r.version}
	}
	return templates, nil
}

func (r *ScalarRecognizer) CompareTemplates(_ context.Context, pool []models.Template, candidate models.Template) ([]float64, error) {
	r.mu.Lock()
	err := r.compareErr
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	c, err := r.scalar(candidate)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, len(pool))
	for i, t := range pool {
		p, err := r.scalar(t)
		if err != nil {
			return nil, err
		}
		scores[i] = math.Max(0, 1-math.Abs(p.Value-c.Value))
	}
	return scores, nil
}

func (r *ScalarRecognizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closeCalls++
	return nil
}

func (r *ScalarRecognizer) scalar(t models.Template) (ScalarTemplate, error) {
	s, ok := t.(ScalarTemplate)
	if !ok || s.Ver != r.version {
		actual := ""
		if t != nil {
			actual = t.Version()
		}
		return ScalarTemplate{}, &models.VersionMismatchError{Expected: r.version, Actual: actual}
	}
	return s, nil
}
