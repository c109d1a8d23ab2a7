// Package embedding provides a recognizer for faces whose embeddings were
// computed upstream. Templates are L2-normalised vectors and scores are cosine
// similarities clamped to [0, 1].
package embedding

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"facereg/internal/registry/models"
)

var (
	ErrUnsupportedImage = errors.New("image carries no embeddings")
	ErrZeroVector       = errors.New("embedding has zero length")
)

// Template is a normalised embedding produced by one model version.
type Template struct {
	Ver    string    `json:"version"`
	Vector []float64 `json:"vector"`
}

func (t Template) Version() string { return t.Ver }

// Clone copies the vector.
func (t Template) Clone() models.Template {
	return Template{Ver: t.Ver, Vector: slices.Clone(t.Vector)}
}

// Sample is an image whose faces were already embedded by one or more models.
// Vectors maps a version to one embedding per face, in face order. Pixel data
// is not retained.
type Sample struct {
	Rect    image.Rectangle
	Vectors map[string][][]float64
}

func (s Sample) ColorModel() color.Model { return color.RGBAModel }
func (s Sample) Bounds() image.Rectangle { return s.Rect }
func (s Sample) At(int, int) color.Color { return color.RGBA{} }

// Recognizer scores embeddings of a single version with cosine similarity.
type Recognizer struct {
	version   string
	dimension int
}

// New returns a recognizer for version. A positive dimension makes extraction
// reject vectors of any other length.
func New(version string, dimension int) (*Recognizer, error) {
	if version == "" {
		return nil, errors.New("version is required")
	}
	if dimension < 0 {
		return nil, fmt.Errorf("invalid dimension %d", dimension)
	}
	return &Recognizer{version: version, dimension: dimension}, nil
}

func (r *Recognizer) Version() string { return r.version }

// ExtractTemplates picks the sample's vectors for this version.
func (r *Recognizer) ExtractTemplates(_ context.Context, faces []models.Face, img image.Image) ([]models.Template, error) {
	sample, ok := img.(Sample)
	if !ok {
		if p, isPtr := img.(*Sample); isPtr && p != nil {
			sample, ok = *p, true
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedImage, img)
	}

	vectors, ok := sample.Vectors[r.version]
	if !ok {
		return nil, fmt.Errorf("%w for version %q", ErrUnsupportedImage, r.version)
	}
	if len(vectors) != len(faces) {
		return nil, fmt.Errorf("sample carries %d %s embeddings for %d faces", len(vectors), r.version, len(faces))
	}

	templates := make([]models.Template, len(vectors))
	for i, v := range vectors {
		if r.dimension > 0 && len(v) != r.dimension {
			return nil, fmt.Errorf("face %d: embedding has %d dimensions, want %d", i, len(v), r.dimension)
		}
		normalised, err := normalise(v)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		templates[i] = Template{Ver: r.version, Vector: normalised}
	}
	return templates, nil
}

// CompareTemplates returns the cosine similarity of candidate with every pool
// template. Negative similarities score 0.
func (r *Recognizer) CompareTemplates(_ context.Context, pool []models.Template, candidate models.Template) ([]float64, error) {
	c, err := r.template(candidate)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, len(pool))
	for i, t := range pool {
		p, err := r.template(t)
		if err != nil {
			return nil, err
		}
		if len(p.Vector) != len(c.Vector) {
			return nil, fmt.Errorf("template %d has %d dimensions, candidate has %d", i, len(p.Vector), len(c.Vector))
		}
		scores[i] = math.Max(0, dot(p.Vector, c.Vector))
	}
	return scores, nil
}

func (r *Recognizer) Close() error { return nil }

func (r *Recognizer) template(t models.Template) (Template, error) {
	switch v := t.(type) {
	case Template:
		if v.Ver == r.version {
			return v, nil
		}
	case *Template:
		if v != nil && v.Ver == r.version {
			return *v, nil
		}
	}
	actual := ""
	if t != nil {
		actual = t.Version()
	}
	return Template{}, &models.VersionMismatchError{Expected: r.version, Actual: actual}
}

func normalise(v []float64) ([]float64, error) {
	norm := math.Sqrt(dot(v, v))
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, ErrZeroVector
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out, nil
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
