// Package engine holds the match decisions of a single registry. It is pure
// logic over a template snapshot: the only I/O is the recognizer's comparison.
package engine

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"facereg/internal/registry/models"
	"facereg/internal/registry/ports"
)

// Engine applies a registry's thresholds to recognizer scores.
type Engine struct {
	recognizer ports.Recognizer
	config     models.Config
}

func New(recognizer ports.Recognizer, config models.Config) *Engine {
	return &Engine{recognizer: recognizer, config: config}
}

// Compare scores candidate against pool. The returned scores align with pool.
func (e *Engine) Compare(ctx context.Context, pool []models.TaggedTemplate, candidate models.Template) ([]float64, error) {
	if len(pool) == 0 {
		return nil, nil
	}
	templates := make([]models.Template, len(pool))
	for i, t := range pool {
		templates[i] = t.Template
	}
	scores, err := e.recognizer.CompareTemplates(ctx, templates, candidate)
	if err != nil {
		return nil, fmt.Errorf("compare templates: %w", err)
	}
	if len(scores) != len(pool) {
		return nil, fmt.Errorf("recognizer returned %d scores for %d templates", len(scores), len(pool))
	}
	for i, score := range scores {
		if math.IsNaN(score) {
			return nil, fmt.Errorf("recognizer returned NaN score for template %d", i)
		}
	}
	return scores, nil
}

// CheckRegistration rejects candidate if it matches a template of another
// identifier at the authentication threshold. The stricter authentication bar
// is used rather than the identification one.
func (e *Engine) CheckRegistration(ctx context.Context, existing []models.TaggedTemplate, candidate models.Template, identifier string) error {
	scores, err := e.Compare(ctx, existing, candidate)
	if err != nil {
		return err
	}

	conflict := -1
	for i, score := range scores {
		if existing[i].Identifier == identifier || score < e.config.AuthenticationThreshold {
			continue
		}
		if conflict < 0 || score > scores[conflict] {
			conflict = i
		}
	}
	if conflict >= 0 {
		return &models.SimilarFaceAlreadyRegisteredError{Identifier: existing[conflict].Identifier}
	}
	return nil
}

// VerifyIdentity requires candidate to match one of identifier's templates when
// the identifier already owns any. A new identifier always passes.
func (e *Engine) VerifyIdentity(ctx context.Context, existing []models.TaggedTemplate, candidate models.Template, identifier string) error {
	owned := models.OwnedBy(existing, identifier)
	if len(owned) == 0 {
		return nil
	}
	scores, err := e.Compare(ctx, owned, candidate)
	if err != nil {
		return err
	}
	best := slices.Max(scores)
	if best < e.config.AuthenticationThreshold {
		return &models.FaceDoesNotMatchExistingError{MaxScore: best}
	}
	return nil
}

// Identify ranks identifiers whose best template scores at or above the
// identification threshold. Each identifier appears at most once and results
// are ordered by descending score.
func (e *Engine) Identify(ctx context.Context, existing []models.TaggedTemplate, candidate models.Template) ([]models.IdentificationResult, error) {
	scores, err := e.Compare(ctx, existing, candidate)
	if err != nil {
		return nil, err
	}

	best := make(map[string]int)
	results := make([]models.IdentificationResult, 0)
	for i, score := range scores {
		if score < e.config.IdentificationThreshold {
			continue
		}
		identifier := existing[i].Identifier
		if at, ok := best[identifier]; ok {
			if score > results[at].Score {
				results[at] = models.IdentificationResult{Match: existing[i], Score: score}
			}
			continue
		}
		best[identifier] = len(results)
		results = append(results, models.IdentificationResult{Match: existing[i], Score: score})
	}

	slices.SortStableFunc(results, func(a, b models.IdentificationResult) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return results, nil
}

// Authenticate scores candidate against identifier's templates and accepts it
// when the best score reaches the authentication threshold.
func (e *Engine) Authenticate(ctx context.Context, existing []models.TaggedTemplate, candidate models.Template, identifier string) (*models.AuthenticationResult, error) {
	owned := models.OwnedBy(existing, identifier)
	if len(owned) == 0 {
		return nil, &models.IdentifierNotRegisteredError{Identifier: identifier}
	}
	scores, err := e.Compare(ctx, owned, candidate)
	if err != nil {
		return nil, err
	}

	at := 0
	for i, score := range scores {
		if score > scores[at] {
			at = i
		}
	}
	return &models.AuthenticationResult{
		Authenticated: scores[at] >= e.config.AuthenticationThreshold,
		Challenge:     candidate,
		Matched:       owned[at],
		Score:         scores[at],
	}, nil
}
