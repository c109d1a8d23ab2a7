// Package coordinator drives several single-version registries as one. Members
// hold templates of mutually incomparable versions; the coordinator fans calls
// out to them, picks ground-truth registries and auto-enrols faces across
// versions. There is no cross-member lock and no cross-member atomicity.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"facereg/internal/notify"
	"facereg/internal/registry/metrics"
	"facereg/internal/registry/models"
)

// Coordinator owns an ordered, fixed list of member registries. Order defines
// fallback and tie-break precedence.
type Coordinator struct {
	members     []Member
	delegate    Delegate
	checkCompat bool
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	dispatcher  *notify.Dispatcher
	closed      atomic.Bool
}

type Option func(*Coordinator)

// WithDelegate sets the delegate told about every added template.
func WithDelegate(delegate Delegate) Option {
	return func(c *Coordinator) {
		c.delegate = delegate
	}
}

// WithoutCompatibilityCheck skips the anchor check at construction.
func WithoutCompatibilityCheck() Option {
	return func(c *Coordinator) {
		c.checkCompat = false
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Coordinator) {
		c.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Coordinator) {
		c.tracer = tracer
	}
}

// New builds a coordinator over members. Unless disabled, it requires one
// member whose identifiers cover the union of all members' identifiers and
// fails with models.ErrIncompatibleFaceTemplates otherwise.
func New(ctx context.Context, members []Member, opts ...Option) (*Coordinator, error) {
	if len(members) == 0 {
		return nil, errors.New("at least one member registry is required")
	}
	for i, m := range members {
		if m == nil {
			return nil, fmt.Errorf("member %d is nil", i)
		}
	}

	c := &Coordinator{
		members:     append([]Member{}, members...),
		checkCompat: true,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:      otel.Tracer("facereg/coordinator"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.checkCompat {
		if _, err := c.findAnchor(ctx); err != nil {
			return nil, err
		}
	}

	c.dispatcher = notify.NewDispatcher(c.delegate,
		notify.WithLogger(c.logger),
		notify.WithMetrics(c.metrics),
	)
	return c, nil
}

// Versions returns the member template versions in member order.
func (c *Coordinator) Versions() []string {
	versions := make([]string, len(c.members))
	for i, m := range c.members {
		versions[i] = m.Version()
	}
	return versions
}

// GetFaceTemplates returns every member's templates, concatenated in member order.
func (c *Coordinator) GetFaceTemplates(ctx context.Context) ([]models.TaggedTemplate, error) {
	if c.closed.Load() {
		return nil, models.ErrClosed
	}
	return c.collectTemplates(ctx, func(ctx context.Context, m Member) ([]models.TaggedTemplate, error) {
		return m.GetAll(ctx)
	})
}

// GetFaceTemplatesByIdentifier returns identifier's templates from every member.
func (c *Coordinator) GetFaceTemplatesByIdentifier(ctx context.Context, identifier string) ([]models.TaggedTemplate, error) {
	if c.closed.Load() {
		return nil, models.ErrClosed
	}
	return c.collectTemplates(ctx, func(ctx context.Context, m Member) ([]models.TaggedTemplate, error) {
		return m.GetByIdentifier(ctx, identifier)
	})
}

// GetIdentifiers returns the union of member identifiers in first-seen order.
func (c *Coordinator) GetIdentifiers(ctx context.Context) ([]string, error) {
	if c.closed.Load() {
		return nil, models.ErrClosed
	}
	sets, err := c.identifierSets(ctx)
	if err != nil {
		return nil, err
	}
	return union(sets), nil
}

// Close cancels pending delegate notifications and closes every member. Later
// calls are no-ops.
func (c *Coordinator) Close(ctx context.Context) error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.dispatcher.Close()

	var errs []error
	for _, m := range c.members {
		if err := m.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close %s registry: %w", m.Version(), err))
		}
	}
	c.logger.InfoContext(ctx, "coordinator closed", "members", len(c.members))
	return errors.Join(errs...)
}

func (c *Coordinator) collectTemplates(ctx context.Context, fetch func(context.Context, Member) ([]models.TaggedTemplate, error)) ([]models.TaggedTemplate, error) {
	slots := make([][]models.TaggedTemplate, len(c.members))
	var g errgroup.Group
	for i, m := range c.members {
		g.Go(func() error {
			templates, err := fetch(ctx, m)
			if err != nil {
				return fmt.Errorf("%s registry: %w", m.Version(), err)
			}
			slots[i] = templates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result []models.TaggedTemplate
	for _, templates := range slots {
		result = append(result, templates...)
	}
	return result, nil
}

// notify hands added templates to the delegate without waiting for it.
func (c *Coordinator) notify(added []models.TaggedTemplate) {
	c.dispatcher.Notify(added)
}

// startSpan opens a span for operation and returns a func that ends it.
func (c *Coordinator) startSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := c.tracer.Start(ctx, "coordinator."+operation, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
