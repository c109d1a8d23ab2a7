package coordinator

import (
	"context"
	"fmt"
	"image"

	"go.opentelemetry.io/otel/attribute"

	"facereg/internal/registry/models"
)

// AuthenticateFace authenticates face as identifier, trying members in order.
//
// A member that does not know the identifier is skipped; any other member
// error aborts the call. The best-scoring result seen so far is kept, and the
// first authenticated result ends the search and is returned. When no member
// knows the identifier the last not-registered error is returned.
//
// With auto-enrolment on, an authenticated result scoring at or above its
// member's auto-enrolment threshold enrols face into every member lacking the
// identifier.
func (c *Coordinator) AuthenticateFace(ctx context.Context, face models.Face, img image.Image, identifier string, opts ...CallOption) (result *models.AuthenticationResult, err error) {
	o := applyCallOptions(opts)
	ctx, end := c.startSpan(ctx, "AuthenticateFace",
		attribute.String("facereg.identifier", identifier),
		attribute.Bool("facereg.auto_enrol", o.autoEnrol),
	)
	defer func() { end(err) }()

	if c.closed.Load() {
		return nil, models.ErrClosed
	}

	var (
		best          *models.AuthenticationResult
		source        = -1
		notRegistered error
	)
	for i, m := range c.members {
		r, err := m.AuthenticateFace(ctx, face, img, identifier)
		if models.IsIdentifierNotRegistered(err) {
			notRegistered = err
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s registry: %w", m.Version(), err)
		}
		// An authenticated result wins regardless of score: scores of different
		// versions are not comparable.
		if best == nil || r.Authenticated || r.Score > best.Score {
			best, source = r, i
		}
		if r.Authenticated {
			break
		}
	}
	if best == nil {
		return nil, notRegistered
	}

	if o.autoEnrol && best.Authenticated && best.Score >= c.members[source].Config().AutoEnrolmentThreshold {
		added := c.autoEnrol(ctx, face, img, identifier, source)
		best.AutoEnrolled = append(best.AutoEnrolled, added...)
		c.notify(added)
	}
	return best, nil
}
