package store

import (
	"fmt"
	"sync"

	"facereg/internal/registry/models"
	"facereg/pkg/platform/sentinel"
)

// InMemoryTemplateStore holds a registry's ordered template list. The closed
// flag lives under the same lock as the list so a close can never interleave
// with an append.
type InMemoryTemplateStore struct {
	mu        sync.RWMutex
	templates []models.TaggedTemplate
	revision  uint64
	closed    bool
}

// New seeds the store with a copy of initial.
func New(initial []models.TaggedTemplate) *InMemoryTemplateStore {
	return &InMemoryTemplateStore{templates: append([]models.TaggedTemplate{}, initial...)}
}

// Snapshot returns a copy of the templates and the revision it was taken at.
func (s *InMemoryTemplateStore) Snapshot() ([]models.TaggedTemplate, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, 0, sentinel.ErrInvalidState
	}
	return append([]models.TaggedTemplate{}, s.templates...), s.revision, nil
}

// All returns a copy of the templates.
func (s *InMemoryTemplateStore) All() ([]models.TaggedTemplate, error) {
	templates, _, err := s.Snapshot()
	return templates, err
}

// Append adds templates unconditionally.
func (s *InMemoryTemplateStore) Append(templates ...models.TaggedTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return sentinel.ErrInvalidState
	}
	s.append(templates)
	return nil
}

// AppendAt adds templates only if nothing was appended since revision.
func (s *InMemoryTemplateStore) AppendAt(revision uint64, templates ...models.TaggedTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return sentinel.ErrInvalidState
	}
	if s.revision != revision {
		return fmt.Errorf("store at revision %d, snapshot at %d: %w", s.revision, revision, sentinel.ErrConflict)
	}
	s.append(templates)
	return nil
}

func (s *InMemoryTemplateStore) append(templates []models.TaggedTemplate) {
	if len(templates) == 0 {
		return
	}
	s.templates = append(s.templates, templates...)
	s.revision++
}

// Len returns the number of templates held.
func (s *InMemoryTemplateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates)
}

// Close clears the store and rejects every later call. It reports whether this
// call performed the transition.
func (s *InMemoryTemplateStore) Close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true
	s.templates = nil
	return true
}

// Closed reports whether Close has been called.
func (s *InMemoryTemplateStore) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
