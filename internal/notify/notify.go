// Package notify delivers template-added notifications to a delegate without
// holding up the operation that produced them.
package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"facereg/internal/registry/metrics"
	"facereg/internal/registry/models"
)

// Delegate is told about templates added to any member registry, whether by
// explicit registration or by auto-enrolment.
type Delegate interface {
	OnTemplatesAdded(ctx context.Context, templates []models.TaggedTemplate) error
}

// DelegateFunc adapts a function to Delegate.
type DelegateFunc func(ctx context.Context, templates []models.TaggedTemplate) error

func (f DelegateFunc) OnTemplatesAdded(ctx context.Context, templates []models.TaggedTemplate) error {
	return f(ctx, templates)
}

// Multi notifies every delegate in order and joins their errors.
type Multi []Delegate

func (m Multi) OnTemplatesAdded(ctx context.Context, templates []models.TaggedTemplate) error {
	var errs []error
	for _, d := range m {
		if err := d.OnTemplatesAdded(ctx, templates); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Dispatcher runs each notification as a detached task. Tasks are not joined
// by the caller and their outcome never reaches it: failures are logged and
// counted. Close cancels the tasks' context and waits for them to return.
type Dispatcher struct {
	delegate Delegate
	logger   *slog.Logger
	metrics  *metrics.Metrics

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

type Option func(*Dispatcher)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// NewDispatcher returns a dispatcher for delegate. A nil delegate yields a
// dispatcher that drops every notification.
func NewDispatcher(delegate Delegate, opts ...Option) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		delegate: delegate,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Notify schedules delivery of templates and returns immediately. It reports
// whether a task was started.
func (d *Dispatcher) Notify(templates []models.TaggedTemplate) bool {
	if d.delegate == nil || len(templates) == 0 {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}

	batch := append([]models.TaggedTemplate{}, templates...)
	d.wg.Add(1)
	go d.deliver(batch)
	return true
}

func (d *Dispatcher) deliver(templates []models.TaggedTemplate) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.metrics.IncrementDelegateFailures()
			d.logger.Error("delegate panicked", "panic", r, "templates", len(templates))
		}
	}()

	if err := d.delegate.OnTemplatesAdded(d.ctx, templates); err != nil {
		d.metrics.IncrementDelegateFailures()
		d.logger.WarnContext(d.ctx, "delegate failed to handle added templates",
			"identifier", templates[0].Identifier,
			"templates", len(templates),
			"error", err,
		)
	}
}

// Wait blocks until every scheduled task has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close stops accepting notifications, cancels running tasks and waits for
// them. It is safe to call more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
}
