package httptransport

import (
	"errors"

	"facereg/internal/coordinator"
	"facereg/internal/recognition/embedding"
	"facereg/internal/registry/models"
	dErrors "facereg/pkg/domain-errors"
)

// toDomainError codes registry and coordinator errors for the response writer.
// Errors that already carry a code pass through.
func toDomainError(err error) error {
	var coded *dErrors.Error
	var partial *coordinator.PartialRegistrationError
	var similar *models.SimilarFaceAlreadyRegisteredError
	var notRegistered *models.IdentifierNotRegisteredError
	var mismatch *models.FaceDoesNotMatchExistingError
	var version *models.VersionMismatchError

	switch {
	case errors.As(err, &partial):
		return dErrors.Wrap(err, dErrors.CodeInvariantViolation, "face registered in some registries only")
	case errors.As(err, &coded):
		return err
	case errors.As(err, &similar):
		return dErrors.Wrap(err, dErrors.CodeConflict, "similar face already registered")
	case errors.As(err, &notRegistered):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "identifier "+notRegistered.Identifier+" is not registered")
	case errors.As(err, &mismatch):
		return dErrors.Wrap(err, dErrors.CodeConflict, "face does not match the identifier's existing templates")
	case errors.Is(err, models.ErrIncompatibleFaceTemplates):
		return dErrors.Wrap(err, dErrors.CodeConflict, "registries hold incompatible identifier sets")
	case errors.Is(err, models.ErrClosed):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "face registry is closed")
	case errors.Is(err, embedding.ErrUnsupportedImage), errors.Is(err, embedding.ErrZeroVector):
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "embeddings do not fit the registries")
	case errors.As(err, &version):
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "template version mismatch")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "internal error")
	}
}
