package coordinator

import (
	"fmt"

	"facereg/internal/registry/models"
)

// PartialRegistrationError reports a fan-out registration that failed in at
// least one member after succeeding in others. Members that succeeded keep
// their templates; Added lists them so callers can re-synchronise.
type PartialRegistrationError struct {
	Added []models.TaggedTemplate
	Err   error
}

func (e *PartialRegistrationError) Error() string {
	return fmt.Sprintf("registration committed in %d member(s) before failing: %v", len(e.Added), e.Err)
}

func (e *PartialRegistrationError) Unwrap() error {
	return e.Err
}
