package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrInvalidState: the store was closed and accepts no further operations
// - ErrConflict: the store changed since the caller's snapshot was taken
// - ErrUnavailable: a collaborator (recognizer, broker) cannot serve the call
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
