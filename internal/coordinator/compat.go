package coordinator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"facereg/internal/registry/models"
)

// identifierSets fetches every member's identifiers concurrently, in member order.
func (c *Coordinator) identifierSets(ctx context.Context) ([][]string, error) {
	sets := make([][]string, len(c.members))
	var g errgroup.Group
	for i, m := range c.members {
		g.Go(func() error {
			ids, err := m.GetIdentifiers(ctx)
			if err != nil {
				return fmt.Errorf("%s registry: %w", m.Version(), err)
			}
			sets[i] = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

// findAnchor returns the index of the first member whose identifiers cover the
// union of all members' identifiers. Only such a member can serve as ground
// truth for a coordinator-wide identification.
func (c *Coordinator) findAnchor(ctx context.Context) (int, error) {
	sets, err := c.identifierSets(ctx)
	if err != nil {
		return -1, err
	}
	anchor := anchorIndex(sets)
	if anchor < 0 {
		return -1, models.ErrIncompatibleFaceTemplates
	}
	return anchor, nil
}

func anchorIndex(sets [][]string) int {
	all := union(sets)
	for i, set := range sets {
		if covers(set, all) {
			return i
		}
	}
	return -1
}

func covers(set, all []string) bool {
	if len(set) < len(all) {
		return false
	}
	have := make(map[string]struct{}, len(set))
	for _, id := range set {
		have[id] = struct{}{}
	}
	for _, id := range all {
		if _, ok := have[id]; !ok {
			return false
		}
	}
	return true
}

// union merges identifier sets keeping first-seen order.
func union(sets [][]string) []string {
	seen := make(map[string]struct{})
	var result []string
	for _, set := range sets {
		for _, id := range set {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}
	return result
}
