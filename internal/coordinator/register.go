package coordinator

import (
	"context"
	"fmt"
	"image"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"facereg/internal/registry/models"
)

// RegisterFace registers face under identifier in every member concurrently
// and returns the new templates in member order.
//
// There is no cross-member rollback: when some members fail after others
// succeeded, the call returns a *PartialRegistrationError listing what was
// committed. The delegate is told about every template actually added.
func (c *Coordinator) RegisterFace(ctx context.Context, face models.Face, img image.Image, identifier string, force bool) (added []models.TaggedTemplate, err error) {
	ctx, end := c.startSpan(ctx, "RegisterFace",
		attribute.String("facereg.identifier", identifier),
		attribute.Bool("facereg.force", force),
	)
	defer func() { end(err) }()

	if c.closed.Load() {
		return nil, models.ErrClosed
	}

	slots := make([]*models.TaggedTemplate, len(c.members))
	var g errgroup.Group
	for i, m := range c.members {
		g.Go(func() error {
			tagged, err := m.RegisterFace(ctx, face, img, identifier, force)
			if err != nil {
				return fmt.Errorf("%s registry: %w", m.Version(), err)
			}
			slots[i] = &tagged
			return nil
		})
	}
	err = g.Wait()

	for _, tagged := range slots {
		if tagged != nil {
			added = append(added, *tagged)
		}
	}
	c.notify(added)

	if err != nil {
		c.logger.WarnContext(ctx, "fan-out registration failed",
			"identifier", identifier,
			"committed", len(added),
			"members", len(c.members),
			"error", err,
		)
		if len(added) > 0 {
			return nil, &PartialRegistrationError{Added: added, Err: err}
		}
		return nil, err
	}

	c.logger.InfoContext(ctx, "face registered in all members",
		"identifier", identifier,
		"members", len(c.members),
	)
	return added, nil
}
