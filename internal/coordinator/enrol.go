package coordinator

import (
	"context"
	"image"
	"sync"

	"facereg/internal/registry/models"
)

// autoEnrol registers face under identifier in every member except source
// that does not hold the identifier yet. The face already matched with high
// confidence, so registration is forced. Members that fail are logged and
// skipped: the triggering identify or authenticate has already succeeded and
// auto-enrolment is best effort. New templates are returned in member order.
func (c *Coordinator) autoEnrol(ctx context.Context, face models.Face, img image.Image, identifier string, source int) []models.TaggedTemplate {
	slots := make([]*models.TaggedTemplate, len(c.members))
	var wg sync.WaitGroup
	for i, m := range c.members {
		if i == source {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			owned, err := m.GetByIdentifier(ctx, identifier)
			if err != nil {
				c.logger.WarnContext(ctx, "auto-enrolment skipped member",
					"identifier", identifier,
					"version", m.Version(),
					"error", err,
				)
				return
			}
			if len(owned) > 0 {
				return
			}
			tagged, err := m.RegisterFace(ctx, face, img, identifier, true)
			if err != nil {
				c.logger.WarnContext(ctx, "auto-enrolment failed",
					"identifier", identifier,
					"version", m.Version(),
					"error", err,
				)
				return
			}
			c.metrics.AddAutoEnrolled(m.Version(), 1)
			slots[i] = &tagged
		}()
	}
	wg.Wait()

	var added []models.TaggedTemplate
	for _, tagged := range slots {
		if tagged != nil {
			added = append(added, *tagged)
		}
	}
	if len(added) > 0 {
		c.logger.InfoContext(ctx, "face auto-enrolled",
			"identifier", identifier,
			"source_version", c.members[source].Version(),
			"templates", len(added),
		)
	}
	return added
}
