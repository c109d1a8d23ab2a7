package models

// IdentificationResult is one ranked match from an identify call.
type IdentificationResult struct {
	Match TaggedTemplate
	Score float64
	// AutoEnrolled holds templates added to other registries as a side effect
	// of this identification. Only the top-ranked result ever carries any.
	AutoEnrolled []TaggedTemplate
}

// AuthenticationResult is the outcome of comparing a face against the
// templates of a single identifier.
type AuthenticationResult struct {
	Authenticated bool
	// Challenge is the template extracted from the presented face.
	Challenge Template
	// Matched is the stored template that produced Score.
	Matched      TaggedTemplate
	Score        float64
	AutoEnrolled []TaggedTemplate
}
