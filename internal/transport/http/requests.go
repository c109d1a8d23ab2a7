package httptransport

import (
	"image"
	"strings"

	"facereg/internal/recognition/embedding"
	"facereg/internal/registry/models"
	dErrors "facereg/pkg/domain-errors"
)

const maxIdentifierLength = 256

// FaceRequest locates a detected face inside the submitted image.
type FaceRequest struct {
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Quality   float64  `json:"quality"`
	Landmarks [][2]int `json:"landmarks,omitempty"`
}

// Probe is a single face with its embeddings keyed by template version.
type Probe struct {
	Face       FaceRequest          `json:"face"`
	Embeddings map[string][]float64 `json:"embeddings"`
}

func (p *Probe) validate() error {
	if p.Face.Width < 0 || p.Face.Height < 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "face width and height must not be negative")
	}
	if len(p.Embeddings) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "at least one embedding is required")
	}
	for version, vector := range p.Embeddings {
		if strings.TrimSpace(version) == "" {
			return dErrors.New(dErrors.CodeInvalidInput, "embedding version must not be empty")
		}
		if len(vector) == 0 {
			return dErrors.New(dErrors.CodeInvalidInput, "embedding "+version+" is empty")
		}
	}
	return nil
}

// requireVersions fails unless the probe carries an embedding for every
// version. Registries missing their embedding would fail only after the
// others committed.
func (p *Probe) requireVersions(versions []string) error {
	var missing []string
	for _, version := range versions {
		if _, ok := p.Embeddings[version]; !ok {
			missing = append(missing, version)
		}
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "missing embeddings for versions "+strings.Join(missing, ", "))
	}
	return nil
}

// Sample converts the probe into the face and image handed to recognizers.
func (p *Probe) Sample() (models.Face, image.Image) {
	rect := image.Rect(p.Face.X, p.Face.Y, p.Face.X+p.Face.Width, p.Face.Y+p.Face.Height)
	face := models.Face{Bounds: rect, Quality: p.Face.Quality}
	for _, lm := range p.Face.Landmarks {
		face.Landmarks = append(face.Landmarks, image.Pt(lm[0], lm[1]))
	}

	vectors := make(map[string][][]float64, len(p.Embeddings))
	for version, vector := range p.Embeddings {
		vectors[version] = [][]float64{vector}
	}
	return face, embedding.Sample{Rect: rect, Vectors: vectors}
}

func validateIdentifier(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "identifier is required")
	}
	if len(identifier) > maxIdentifierLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, "identifier is too long")
	}
	return identifier, nil
}

// RegisterRequest is the body of POST /faces.
type RegisterRequest struct {
	Probe
	Identifier string `json:"identifier"`
	Force      bool   `json:"force"`
}

func (r *RegisterRequest) Validate() error {
	if err := r.Probe.validate(); err != nil {
		return err
	}
	identifier, err := validateIdentifier(r.Identifier)
	if err != nil {
		return err
	}
	r.Identifier = identifier
	return nil
}

// IdentifyRequest is the body of POST /faces/identify. Safe and AutoEnrol
// default to true.
type IdentifyRequest struct {
	Probe
	Safe      *bool `json:"safe,omitempty"`
	AutoEnrol *bool `json:"auto_enrol,omitempty"`
}

func (r *IdentifyRequest) Validate() error {
	return r.Probe.validate()
}

// AuthenticateRequest is the body of POST /faces/authenticate.
type AuthenticateRequest struct {
	Probe
	Identifier string `json:"identifier"`
	AutoEnrol  *bool  `json:"auto_enrol,omitempty"`
}

func (r *AuthenticateRequest) Validate() error {
	if err := r.Probe.validate(); err != nil {
		return err
	}
	identifier, err := validateIdentifier(r.Identifier)
	if err != nil {
		return err
	}
	r.Identifier = identifier
	return nil
}
