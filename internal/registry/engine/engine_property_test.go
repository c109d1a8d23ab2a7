package engine

import (
	"context"
	"fmt"
	"math"
	"testing"

	"pgregory.net/rapid"

	"facereg/internal/registry/models"
	"facereg/pkg/testutil"
)

func drawPool(t *rapid.T) []models.TaggedTemplate {
	n := rapid.IntRange(0, 30).Draw(t, "templates")
	pool := make([]models.TaggedTemplate, n)
	for i := range pool {
		value := rapid.Float64Range(0, 10).Draw(t, fmt.Sprintf("value%d", i))
		owner := rapid.IntRange(0, 5).Draw(t, fmt.Sprintf("owner%d", i))
		pool[i] = testutil.Tag("v1", value, fmt.Sprintf("User %d", owner))
	}
	return pool
}

func scalarScore(tagged models.TaggedTemplate, probe float64) float64 {
	return math.Max(0, 1-math.Abs(tagged.Template.(testutil.ScalarTemplate).Value-probe))
}

func drawConfig(t *rapid.T) models.Config {
	return models.Config{
		AuthenticationThreshold: rapid.Float64Range(0, 1).Draw(t, "auth"),
		IdentificationThreshold: rapid.Float64Range(0, 1).Draw(t, "identify"),
		AutoEnrolmentThreshold:  1,
	}
}

// Identify returns each identifier at most once, at its best score, in
// descending order and never below the threshold.
func TestIdentify_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		config := drawConfig(rt)
		pool := drawPool(rt)
		probe := rapid.Float64Range(0, 10).Draw(rt, "probe")
		e := New(testutil.NewScalarRecognizer("v1"), config)

		results, err := e.Identify(context.Background(), pool, testutil.ScalarTemplate{Value: probe, Ver: "v1"})
		if err != nil {
			rt.Fatalf("identify: %v", err)
		}

		best := make(map[string]float64)
		for _, tagged := range pool {
			score := scalarScore(tagged, probe)
			if score < config.IdentificationThreshold {
				continue
			}
			if cur, ok := best[tagged.Identifier]; !ok || score > cur {
				best[tagged.Identifier] = score
			}
		}
		if len(results) != len(best) {
			rt.Fatalf("got %d results, want %d", len(results), len(best))
		}
		seen := make(map[string]bool)
		for i, r := range results {
			if seen[r.Match.Identifier] {
				rt.Fatalf("identifier %q returned twice", r.Match.Identifier)
			}
			seen[r.Match.Identifier] = true
			if r.Score != best[r.Match.Identifier] {
				rt.Fatalf("%q scored %v, want best %v", r.Match.Identifier, r.Score, best[r.Match.Identifier])
			}
			if i > 0 && results[i-1].Score < r.Score {
				rt.Fatalf("results not in descending order at %d", i)
			}
		}
	})
}

// A registration check never rejects a face because of its own identifier's
// templates, and always names an identifier whose template reached the
// authentication threshold.
func TestCheckRegistration_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		config := drawConfig(rt)
		pool := drawPool(rt)
		probe := rapid.Float64Range(0, 10).Draw(rt, "probe")
		identifier := fmt.Sprintf("User %d", rapid.IntRange(0, 5).Draw(rt, "identifier"))
		e := New(testutil.NewScalarRecognizer("v1"), config)

		err := e.CheckRegistration(context.Background(), pool, testutil.ScalarTemplate{Value: probe, Ver: "v1"}, identifier)

		conflicting := make(map[string]bool)
		for _, tagged := range pool {
			if tagged.Identifier != identifier && scalarScore(tagged, probe) >= config.AuthenticationThreshold {
				conflicting[tagged.Identifier] = true
			}
		}
		if len(conflicting) == 0 {
			if err != nil {
				rt.Fatalf("unexpected rejection: %v", err)
			}
			return
		}
		similar, ok := err.(*models.SimilarFaceAlreadyRegisteredError)
		if !ok {
			rt.Fatalf("expected SimilarFaceAlreadyRegisteredError, got %v", err)
		}
		if !conflicting[similar.Identifier] {
			rt.Fatalf("named %q which does not conflict", similar.Identifier)
		}
	})
}
