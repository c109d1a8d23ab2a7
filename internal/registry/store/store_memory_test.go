package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facereg/internal/registry/models"
	"facereg/pkg/platform/sentinel"
)

type versioned string

func (v versioned) Version() string { return string(v) }

func tagged(identifier string) models.TaggedTemplate {
	return models.TaggedTemplate{Template: versioned("v1"), Identifier: identifier}
}

func TestInMemoryTemplateStore_SnapshotIsCopy(t *testing.T) {
	initial := []models.TaggedTemplate{tagged("a")}
	s := New(initial)

	initial[0].Identifier = "mutated"
	snapshot, rev, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), rev)
	assert.Equal(t, "a", snapshot[0].Identifier)

	snapshot[0].Identifier = "mutated again"
	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, "a", all[0].Identifier)
}

func TestInMemoryTemplateStore_AppendAt(t *testing.T) {
	s := New(nil)

	_, rev, err := s.Snapshot()
	require.NoError(t, err)
	require.NoError(t, s.AppendAt(rev, tagged("a")))

	t.Run("stale revision is rejected", func(t *testing.T) {
		err := s.AppendAt(rev, tagged("b"))
		assert.ErrorIs(t, err, sentinel.ErrConflict)

		all, err := s.All()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("current revision is accepted", func(t *testing.T) {
		_, rev, err := s.Snapshot()
		require.NoError(t, err)
		require.NoError(t, s.AppendAt(rev, tagged("b")))

		all, err := s.All()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, models.Identifiers(all))
	})
}

func TestInMemoryTemplateStore_Close(t *testing.T) {
	s := New([]models.TaggedTemplate{tagged("a")})

	assert.True(t, s.Close())
	assert.False(t, s.Close())
	assert.True(t, s.Closed())

	_, err := s.All()
	assert.ErrorIs(t, err, sentinel.ErrInvalidState)
	assert.ErrorIs(t, s.Append(tagged("b")), sentinel.ErrInvalidState)
	assert.ErrorIs(t, s.AppendAt(0, tagged("b")), sentinel.ErrInvalidState)
}

func TestInMemoryTemplateStore_ConcurrentAppend(t *testing.T) {
	s := New(nil)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Append(tagged("x"))
		}()
	}
	wg.Wait()

	all, _, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
