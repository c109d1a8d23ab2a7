// Package kafka publishes template-added notifications to a Kafka topic so
// downstream systems (audit, replication) can follow registry changes.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"facereg/internal/registry/models"
	"facereg/pkg/platform/sentinel"
)

// TemplatesAddedEvent is the record value written for each notification.
// Template contents are opaque and never leave the process; only their
// identifiers and versions are published.
type TemplatesAddedEvent struct {
	EventID    uuid.UUID       `json:"event_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Templates  []TemplateEntry `json:"templates"`
}

// TemplateEntry describes one added template.
type TemplateEntry struct {
	Identifier string `json:"identifier"`
	Version    string `json:"version"`
}

// NewEvent builds the event for templates.
func NewEvent(templates []models.TaggedTemplate, now time.Time) TemplatesAddedEvent {
	entries := make([]TemplateEntry, len(templates))
	for i, t := range templates {
		entries[i] = TemplateEntry{Identifier: t.Identifier, Version: t.Version()}
	}
	return TemplatesAddedEvent{
		EventID:    uuid.New(),
		OccurredAt: now.UTC(),
		Templates:  entries,
	}
}

// Records converts templates into Kafka records keyed by identifier, so all
// events for one identity land on the same partition.
func Records(templates []models.TaggedTemplate, now time.Time) ([]*kgo.Record, error) {
	byIdentifier := make(map[string][]models.TaggedTemplate)
	var order []string
	for _, t := range templates {
		if _, ok := byIdentifier[t.Identifier]; !ok {
			order = append(order, t.Identifier)
		}
		byIdentifier[t.Identifier] = append(byIdentifier[t.Identifier], t)
	}

	records := make([]*kgo.Record, 0, len(order))
	for _, identifier := range order {
		value, err := json.Marshal(NewEvent(byIdentifier[identifier], now))
		if err != nil {
			return nil, fmt.Errorf("encode templates-added event: %w", err)
		}
		records = append(records, &kgo.Record{Key: []byte(identifier), Value: value})
	}
	return records, nil
}

// Publisher is a notify.Delegate producing to a single topic.
type Publisher struct {
	client *kgo.Client
	logger *slog.Logger
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New connects a publisher to brokers. The client connects lazily; broker
// outages surface on the first produce.
func New(brokers []string, topic string, opts ...Option) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic is required")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression(), kgo.NoCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	p := &Publisher{
		client: client,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// OnTemplatesAdded produces one event per identifier and waits for the acks.
func (p *Publisher) OnTemplatesAdded(ctx context.Context, templates []models.TaggedTemplate) error {
	records, err := Records(templates, time.Now())
	if err != nil {
		return err
	}
	if err := p.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("%w: produce templates-added event: %v", sentinel.ErrUnavailable, err)
	}
	p.logger.DebugContext(ctx, "templates-added event published",
		"records", len(records),
		"templates", len(templates),
	)
	return nil
}

// Close releases the client connections.
func (p *Publisher) Close() {
	p.client.Close()
}
