package coordinator

import (
	"context"
	"fmt"
	"image"

	"go.opentelemetry.io/otel/attribute"

	"facereg/internal/registry/models"
)

// IdentifyFace identifies face across members.
//
// Safe mode (the default) re-checks which member covers every identifier and
// identifies against that member only. The candidate pool is thereby narrowed
// to one registry chosen by identifier coverage; members are never compared
// against each other. When no member covers all identifiers the call fails
// with models.ErrIncompatibleFaceTemplates.
//
// Unsafe mode returns the first non-empty result in member order and may miss
// a better match in a later member. It suits partially migrated deployments.
//
// With auto-enrolment on, a top match scoring at or above its member's
// auto-enrolment threshold enrols face into every member lacking the
// identifier; the new templates are attached to the top result.
func (c *Coordinator) IdentifyFace(ctx context.Context, face models.Face, img image.Image, opts ...CallOption) (results []models.IdentificationResult, err error) {
	o := applyCallOptions(opts)
	ctx, end := c.startSpan(ctx, "IdentifyFace",
		attribute.Bool("facereg.safe", o.safe),
		attribute.Bool("facereg.auto_enrol", o.autoEnrol),
	)
	defer func() { end(err) }()

	if c.closed.Load() {
		return nil, models.ErrClosed
	}

	var source int
	if o.safe {
		source, results, err = c.identifySafe(ctx, face, img)
	} else {
		source, results, err = c.identifyFirst(ctx, face, img)
	}
	if err != nil {
		return nil, err
	}
	if len(results) == 0 || !o.autoEnrol {
		return results, nil
	}

	top := &results[0]
	if top.Score < c.members[source].Config().AutoEnrolmentThreshold {
		return results, nil
	}
	top.AutoEnrolled = c.autoEnrol(ctx, face, img, top.Match.Identifier, source)
	c.notify(top.AutoEnrolled)
	return results, nil
}

func (c *Coordinator) identifySafe(ctx context.Context, face models.Face, img image.Image) (int, []models.IdentificationResult, error) {
	anchor, err := c.findAnchor(ctx)
	if err != nil {
		return -1, nil, err
	}
	m := c.members[anchor]
	results, err := m.IdentifyFace(ctx, face, img)
	if err != nil {
		return -1, nil, fmt.Errorf("%s registry: %w", m.Version(), err)
	}
	return anchor, results, nil
}

func (c *Coordinator) identifyFirst(ctx context.Context, face models.Face, img image.Image) (int, []models.IdentificationResult, error) {
	for i, m := range c.members {
		results, err := m.IdentifyFace(ctx, face, img)
		if err != nil {
			return -1, nil, fmt.Errorf("%s registry: %w", m.Version(), err)
		}
		if len(results) > 0 {
			return i, results, nil
		}
	}
	return -1, nil, nil
}
