package coordinator

import (
	"context"
	"image"

	"facereg/internal/notify"
	"facereg/internal/registry/models"
)

// Member is the view the coordinator has of one single-version registry.
// *service.Registry satisfies it. The coordinator only ever goes through
// these methods, so each member keeps its own locking discipline.
type Member interface {
	Version() string
	Config() models.Config
	GetAll(ctx context.Context) ([]models.TaggedTemplate, error)
	GetIdentifiers(ctx context.Context) ([]string, error)
	GetByIdentifier(ctx context.Context, identifier string) ([]models.TaggedTemplate, error)
	RegisterFace(ctx context.Context, face models.Face, img image.Image, identifier string, force bool) (models.TaggedTemplate, error)
	IdentifyFace(ctx context.Context, face models.Face, img image.Image) ([]models.IdentificationResult, error)
	AuthenticateFace(ctx context.Context, face models.Face, img image.Image, identifier string) (*models.AuthenticationResult, error)
	Close(ctx context.Context) error
}

// Delegate is notified of templates added to any member.
type Delegate = notify.Delegate
