// Package service implements a single-version face registry: one template
// store, one recognizer and one set of thresholds.
package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"facereg/internal/registry/engine"
	"facereg/internal/registry/metrics"
	"facereg/internal/registry/models"
	"facereg/internal/registry/ports"
	"facereg/internal/registry/store"
	dErrors "facereg/pkg/domain-errors"
	"facereg/pkg/platform/sentinel"
)

// Type aliases for interfaces from ports package.
type Recognizer = ports.Recognizer

// Registry registers, identifies and authenticates faces against templates of
// a single version. It is Open from construction until Close; afterwards every
// operation fails with models.ErrClosed.
type Registry struct {
	recognizer Recognizer
	config     models.Config
	version    string
	engine     *engine.Engine
	store      *store.InMemoryTemplateStore
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer

	closeOnce sync.Once
	closeErr  error
}

type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(r *Registry) {
		r.tracer = tracer
	}
}

// New builds a registry seeded with initial. Every initial template must carry
// the recognizer's version.
func New(recognizer Recognizer, config models.Config, initial []models.TaggedTemplate, opts ...Option) (*Registry, error) {
	if recognizer == nil {
		return nil, errors.New("recognizer is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	version := recognizer.Version()
	for _, t := range initial {
		if t.Version() != version {
			return nil, &models.VersionMismatchError{Expected: version, Actual: t.Version()}
		}
	}

	r := &Registry{
		recognizer: recognizer,
		config:     config,
		version:    version,
		engine:     engine.New(recognizer, config),
		store:      store.New(models.CloneAll(initial)),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:     otel.Tracer("facereg/registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.metrics.SetTemplates(version, len(initial))
	return r, nil
}

// Version returns the template version this registry holds.
func (r *Registry) Version() string {
	return r.version
}

// Config returns the registry thresholds.
func (r *Registry) Config() models.Config {
	return r.config
}

// GetAll returns a copy of every registered template. Templates implementing
// models.Cloner are deep-copied.
func (r *Registry) GetAll(_ context.Context) ([]models.TaggedTemplate, error) {
	templates, err := r.store.All()
	if err != nil {
		return nil, translate(err)
	}
	return models.CloneAll(templates), nil
}

// GetIdentifiers returns the distinct registered identifiers.
func (r *Registry) GetIdentifiers(_ context.Context) ([]string, error) {
	templates, err := r.store.All()
	if err != nil {
		return nil, translate(err)
	}
	return models.Identifiers(templates), nil
}

// GetByIdentifier returns the templates registered under identifier.
func (r *Registry) GetByIdentifier(_ context.Context, identifier string) ([]models.TaggedTemplate, error) {
	templates, err := r.store.All()
	if err != nil {
		return nil, translate(err)
	}
	return models.CloneAll(models.OwnedBy(templates, identifier)), nil
}

// RegisterFace extracts a template from face and adds it under identifier.
// Unless force is set, the template is rejected when it matches another
// identifier's template at the authentication threshold. A rejected
// registration leaves the store untouched.
func (r *Registry) RegisterFace(ctx context.Context, face models.Face, img image.Image, identifier string, force bool) (tagged models.TaggedTemplate, err error) {
	ctx, done := r.begin(ctx, "register", attribute.String("facereg.identifier", identifier), attribute.Bool("facereg.force", force))
	defer func() { done(err) }()

	if identifier == "" {
		return models.TaggedTemplate{}, dErrors.New(dErrors.CodeInvalidInput, "identifier is required")
	}
	if r.store.Closed() {
		return models.TaggedTemplate{}, models.ErrClosed
	}
	template, err := r.extract(ctx, face, img)
	if err != nil {
		return models.TaggedTemplate{}, err
	}
	tagged = models.TaggedTemplate{Template: template, Identifier: identifier}

	if force {
		if err := r.store.Append(tagged); err != nil {
			return models.TaggedTemplate{}, translate(err)
		}
	} else if err := r.appendChecked(ctx, tagged); err != nil {
		return models.TaggedTemplate{}, err
	}

	r.logger.InfoContext(ctx, "face registered",
		"identifier", identifier,
		"version", r.version,
		"forced", force,
	)
	return tagged.Clone(), nil
}

// appendChecked runs the registration checks against a snapshot and appends at
// that snapshot's revision. When another registration lands first the checks
// are repeated, so a racing conflicting face is never admitted.
func (r *Registry) appendChecked(ctx context.Context, tagged models.TaggedTemplate) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		existing, revision, err := r.store.Snapshot()
		if err != nil {
			return translate(err)
		}
		if err := r.engine.CheckRegistration(ctx, existing, tagged.Template, tagged.Identifier); err != nil {
			return err
		}
		if r.config.VerifyExistingIdentity {
			if err := r.engine.VerifyIdentity(ctx, existing, tagged.Template, tagged.Identifier); err != nil {
				return err
			}
		}

		err = r.store.AppendAt(revision, tagged)
		if errors.Is(err, sentinel.ErrConflict) {
			r.logger.DebugContext(ctx, "store changed during registration, re-checking",
				"identifier", tagged.Identifier,
				"version", r.version,
			)
			continue
		}
		return translate(err)
	}
}

// IdentifyFace ranks registered identifiers by similarity to face.
func (r *Registry) IdentifyFace(ctx context.Context, face models.Face, img image.Image) (results []models.IdentificationResult, err error) {
	ctx, done := r.begin(ctx, "identify")
	defer func() { done(err) }()

	if r.store.Closed() {
		return nil, models.ErrClosed
	}
	candidate, err := r.extract(ctx, face, img)
	if err != nil {
		return nil, err
	}
	existing, err := r.store.All()
	if err != nil {
		return nil, translate(err)
	}
	results, err = r.engine.Identify(ctx, existing, candidate)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Match = results[i].Match.Clone()
	}
	return results, nil
}

// AuthenticateFace compares face against the templates of identifier.
func (r *Registry) AuthenticateFace(ctx context.Context, face models.Face, img image.Image, identifier string) (result *models.AuthenticationResult, err error) {
	ctx, done := r.begin(ctx, "authenticate", attribute.String("facereg.identifier", identifier))
	defer func() { done(err) }()

	if r.store.Closed() {
		return nil, models.ErrClosed
	}
	candidate, err := r.extract(ctx, face, img)
	if err != nil {
		return nil, err
	}
	existing, err := r.store.All()
	if err != nil {
		return nil, translate(err)
	}
	result, err = r.engine.Authenticate(ctx, existing, candidate, identifier)
	if err != nil {
		return nil, err
	}
	result.Matched = result.Matched.Clone()
	return result, nil
}

// Close clears the registry and releases the recognizer. Later calls are
// no-ops; operations already running may still complete.
func (r *Registry) Close(ctx context.Context) error {
	r.closeOnce.Do(func() {
		if !r.store.Close() {
			return
		}
		r.metrics.SetTemplates(r.version, 0)
		if err := r.recognizer.Close(); err != nil {
			r.closeErr = fmt.Errorf("close %s recognizer: %w", r.version, err)
		}
		r.logger.InfoContext(ctx, "registry closed", "version", r.version)
	})
	return r.closeErr
}

func (r *Registry) extract(ctx context.Context, face models.Face, img image.Image) (models.Template, error) {
	templates, err := r.recognizer.ExtractTemplates(ctx, []models.Face{face}, img)
	if err != nil {
		return nil, fmt.Errorf("extract template: %w", err)
	}
	if len(templates) != 1 {
		return nil, fmt.Errorf("recognizer returned %d templates for one face", len(templates))
	}
	if templates[0] == nil || templates[0].Version() != r.version {
		actual := ""
		if templates[0] != nil {
			actual = templates[0].Version()
		}
		return nil, &models.VersionMismatchError{Expected: r.version, Actual: actual}
	}
	return templates[0], nil
}

// begin opens a span for operation and returns a func recording its outcome.
func (r *Registry) begin(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	attrs = append(attrs, attribute.String("facereg.version", r.version))
	ctx, span := r.tracer.Start(ctx, "registry."+operation, trace.WithAttributes(attrs...))

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		r.metrics.ObserveOperation(r.version, operation, Outcome(err), time.Since(start))
		if operation == "register" && err == nil {
			r.metrics.SetTemplates(r.version, r.store.Len())
		}
	}
}

// Outcome labels err for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, models.ErrClosed):
		return "closed"
	case models.IsSimilarFaceAlreadyRegistered(err), models.IsFaceDoesNotMatchExisting(err):
		return "rejected"
	case models.IsIdentifierNotRegistered(err):
		return "not_registered"
	default:
		return "error"
	}
}

// translate maps store facts onto registry errors.
func translate(err error) error {
	if errors.Is(err, sentinel.ErrInvalidState) {
		return models.ErrClosed
	}
	return err
}
