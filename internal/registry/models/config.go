package models

import (
	"math"

	dErrors "facereg/pkg/domain-errors"
)

// Config holds the per-registry decision thresholds. All thresholds live in
// the score range of the registry's recognizer.
type Config struct {
	// AuthenticationThreshold is the minimum score to accept an authentication
	// and to flag a registration conflict with another identifier.
	AuthenticationThreshold float64
	// IdentificationThreshold is the minimum score for a candidate to appear in
	// identification results.
	IdentificationThreshold float64
	// AutoEnrolmentThreshold is the minimum score before a successful identify or
	// authenticate enrolls the face into sibling registries.
	AutoEnrolmentThreshold float64
	// VerifyExistingIdentity requires a new registration under an identifier that
	// already owns templates to match one of them at AuthenticationThreshold.
	VerifyExistingIdentity bool
}

// DefaultConfig returns thresholds suited to cosine-similarity recognizers.
func DefaultConfig() Config {
	return Config{
		AuthenticationThreshold: 0.8,
		IdentificationThreshold: 0.75,
		AutoEnrolmentThreshold:  0.85,
	}
}

// Validate rejects thresholds that cannot be compared against scores.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"authentication threshold": c.AuthenticationThreshold,
		"identification threshold": c.IdentificationThreshold,
		"auto-enrolment threshold": c.AutoEnrolmentThreshold,
	} {
		if math.IsNaN(v) {
			return dErrors.New(dErrors.CodeInvalidInput, name+" must be a number")
		}
	}
	return nil
}
