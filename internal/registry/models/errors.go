package models

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by every operation on a closed registry or coordinator.
	ErrClosed = errors.New("face registry is closed")

	// ErrIncompatibleFaceTemplates is returned when no member registry holds the
	// full union of identifiers across all members.
	ErrIncompatibleFaceTemplates = errors.New("no registry covers all registered identifiers")
)

// SimilarFaceAlreadyRegisteredError rejects a registration whose face matches a
// template of a different identifier.
type SimilarFaceAlreadyRegisteredError struct {
	Identifier string
}

func (e *SimilarFaceAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("similar face already registered as %q", e.Identifier)
}

// IdentifierNotRegisteredError is returned when an identifier owns no templates.
type IdentifierNotRegisteredError struct {
	Identifier string
}

func (e *IdentifierNotRegisteredError) Error() string {
	return fmt.Sprintf("identifier %q is not registered", e.Identifier)
}

// FaceDoesNotMatchExistingError rejects a registration that does not match the
// templates already owned by its identifier.
type FaceDoesNotMatchExistingError struct {
	MaxScore float64
}

func (e *FaceDoesNotMatchExistingError) Error() string {
	return fmt.Sprintf("face does not match existing templates (max score %.4f)", e.MaxScore)
}

// VersionMismatchError reports a template handed to a recognizer or registry of
// another version.
type VersionMismatchError struct {
	Expected string
	Actual   string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("template version %q does not match %q", e.Actual, e.Expected)
}

// IsIdentifierNotRegistered reports whether err is an IdentifierNotRegisteredError.
func IsIdentifierNotRegistered(err error) bool {
	var target *IdentifierNotRegisteredError
	return errors.As(err, &target)
}

// IsSimilarFaceAlreadyRegistered reports whether err is a SimilarFaceAlreadyRegisteredError.
func IsSimilarFaceAlreadyRegistered(err error) bool {
	var target *SimilarFaceAlreadyRegisteredError
	return errors.As(err, &target)
}

// IsFaceDoesNotMatchExisting reports whether err is a FaceDoesNotMatchExistingError.
func IsFaceDoesNotMatchExisting(err error) bool {
	var target *FaceDoesNotMatchExistingError
	return errors.As(err, &target)
}
