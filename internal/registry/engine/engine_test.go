package engine

//go:generate mockgen -source=../ports/recognizer.go -destination=../ports/mocks/mocks.go -package=mocks Recognizer

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"facereg/internal/registry/models"
	"facereg/internal/registry/ports/mocks"
	"facereg/pkg/testutil"
)

// =============================================================================
// Match Engine Test Suite
// =============================================================================

type EngineSuite struct {
	suite.Suite
	recognizer *testutil.ScalarRecognizer
	engine     *Engine
	registered []models.TaggedTemplate
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.recognizer = testutil.NewScalarRecognizer("v1")
	s.engine = New(s.recognizer, models.Config{
		AuthenticationThreshold: 0.8,
		IdentificationThreshold: 0.5,
		AutoEnrolmentThreshold:  0.85,
	})
	s.registered = testutil.ScalarTemplates("v1", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func (s *EngineSuite) candidate(v float64) models.Template {
	return testutil.ScalarTemplate{Value: v, Ver: "v1"}
}

// =============================================================================
// Registration conflicts
// =============================================================================

func (s *EngineSuite) TestCheckRegistration() {
	ctx := context.Background()

	s.Run("similar face of another identifier is rejected", func() {
		err := s.engine.CheckRegistration(ctx, s.registered, s.candidate(5.1), "New user")

		var conflict *models.SimilarFaceAlreadyRegisteredError
		s.Require().ErrorAs(err, &conflict)
		s.Equal("User 5", conflict.Identifier)
	})

	s.Run("similar face of the same identifier is accepted", func() {
		err := s.engine.CheckRegistration(ctx, s.registered, s.candidate(5.1), "User 5")
		s.NoError(err)
	})

	s.Run("dissimilar face is accepted", func() {
		err := s.engine.CheckRegistration(ctx, s.registered, s.candidate(5.5), "New user")
		s.NoError(err)
	})

	s.Run("empty registry accepts anything", func() {
		err := s.engine.CheckRegistration(ctx, nil, s.candidate(5.1), "New user")
		s.NoError(err)
	})
}

func (s *EngineSuite) TestVerifyIdentity() {
	ctx := context.Background()

	s.Run("new identifier passes", func() {
		s.NoError(s.engine.VerifyIdentity(ctx, s.registered, s.candidate(3), "New user"))
	})

	s.Run("matching face passes", func() {
		s.NoError(s.engine.VerifyIdentity(ctx, s.registered, s.candidate(3.1), "User 3"))
	})

	s.Run("mismatching face reports best score", func() {
		err := s.engine.VerifyIdentity(ctx, s.registered, s.candidate(3.5), "User 3")

		var mismatch *models.FaceDoesNotMatchExistingError
		s.Require().ErrorAs(err, &mismatch)
		s.InDelta(0.5, mismatch.MaxScore, 1e-9)
	})
}

// =============================================================================
// Identification
// =============================================================================

func (s *EngineSuite) TestIdentify() {
	ctx := context.Background()

	s.Run("single match between integers", func() {
		results, err := s.engine.Identify(ctx, s.registered, s.candidate(5.1))
		s.Require().NoError(err)
		s.Require().Len(results, 1)
		s.Equal("User 5", results[0].Match.Identifier)
		s.InDelta(0.9, results[0].Score, 1e-9)
	})

	s.Run("results are ordered by descending score", func() {
		pool := append(append([]models.TaggedTemplate{}, s.registered...), testutil.Tag("v1", 5.7, "User 6"))
		results, err := s.engine.Identify(ctx, pool, s.candidate(5.5))
		s.Require().NoError(err)
		s.Require().Len(results, 2)
		s.Equal("User 6", results[0].Match.Identifier)
		s.Equal("User 5", results[1].Match.Identifier)
		s.InDelta(0.8, results[0].Score, 1e-9)
		s.InDelta(0.5, results[1].Score, 1e-9)
	})

	s.Run("identifier with several templates appears once with its best score", func() {
		pool := append(append([]models.TaggedTemplate{}, s.registered...),
			testutil.Tag("v1", 5.05, "User 5"),
			testutil.Tag("v1", 5.3, "User 5"),
		)
		results, err := s.engine.Identify(ctx, pool, s.candidate(5.1))
		s.Require().NoError(err)
		s.Require().Len(results, 1)
		s.Equal("User 5", results[0].Match.Identifier)
		s.InDelta(0.95, results[0].Score, 1e-9)
		s.InDelta(5.05, results[0].Match.Template.(testutil.ScalarTemplate).Value, 1e-9)
	})

	s.Run("empty registry yields empty result", func() {
		results, err := s.engine.Identify(ctx, nil, s.candidate(5.1))
		s.NoError(err)
		s.Empty(results)
	})

	s.Run("no template above threshold yields empty result", func() {
		results, err := s.engine.Identify(ctx, s.registered, s.candidate(42))
		s.NoError(err)
		s.Empty(results)
	})
}

// =============================================================================
// Authentication
// =============================================================================

func (s *EngineSuite) TestAuthenticate() {
	ctx := context.Background()

	s.Run("matching face authenticates", func() {
		result, err := s.engine.Authenticate(ctx, s.registered, s.candidate(2.1), "User 2")
		s.Require().NoError(err)
		s.True(result.Authenticated)
		s.Equal("User 2", result.Matched.Identifier)
		s.InDelta(0.9, result.Score, 1e-9)
		s.Equal(s.candidate(2.1), result.Challenge)
	})

	s.Run("face of another user is not authenticated", func() {
		result, err := s.engine.Authenticate(ctx, s.registered, s.candidate(5), "User 2")
		s.Require().NoError(err)
		s.False(result.Authenticated)
		s.Zero(result.Score)
	})

	s.Run("best of several templates is used", func() {
		pool := append(append([]models.TaggedTemplate{}, s.registered...), testutil.Tag("v1", 2.45, "User 2"))
		result, err := s.engine.Authenticate(ctx, pool, s.candidate(2.5), "User 2")
		s.Require().NoError(err)
		s.True(result.Authenticated)
		s.InDelta(0.95, result.Score, 1e-9)
	})

	s.Run("unknown identifier fails", func() {
		_, err := s.engine.Authenticate(ctx, s.registered, s.candidate(2), "Nobody")

		var notRegistered *models.IdentifierNotRegisteredError
		s.Require().ErrorAs(err, &notRegistered)
		s.Equal("Nobody", notRegistered.Identifier)
	})
}

// =============================================================================
// Recognizer contract
// =============================================================================

func (s *EngineSuite) TestCompareRecognizerContract() {
	ctx := context.Background()
	ctrl := gomock.NewController(s.T())
	recognizer := mocks.NewMockRecognizer(ctrl)
	engine := New(recognizer, models.DefaultConfig())

	s.Run("misaligned scores are rejected", func() {
		recognizer.EXPECT().CompareTemplates(gomock.Any(), gomock.Len(2), gomock.Any()).Return([]float64{1}, nil)

		_, err := engine.Identify(ctx, s.registered[:2], s.candidate(0))
		s.ErrorContains(err, "returned 1 scores for 2 templates")
	})

	s.Run("NaN scores are rejected before any threshold is applied", func() {
		recognizer.EXPECT().CompareTemplates(gomock.Any(), gomock.Len(2), gomock.Any()).Return([]float64{0.9, math.NaN()}, nil).Times(2)

		_, err := engine.Identify(ctx, s.registered[:2], s.candidate(0))
		s.ErrorContains(err, "NaN score for template 1")

		err = engine.CheckRegistration(ctx, s.registered[:2], s.candidate(0), "New User")
		s.ErrorContains(err, "NaN score for template 1")
	})

	s.Run("recognizer failure is propagated", func() {
		boom := errors.New("boom")
		recognizer.EXPECT().CompareTemplates(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := engine.Authenticate(ctx, s.registered, s.candidate(0), "User 0")
		s.ErrorIs(err, boom)
	})

	s.Run("empty pool never reaches the recognizer", func() {
		results, err := engine.Identify(ctx, nil, s.candidate(0))
		s.NoError(err)
		s.Empty(results)
	})
}
