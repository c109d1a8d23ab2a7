package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facereg/internal/registry/metrics"
	"facereg/internal/registry/models"
	"facereg/pkg/testutil"
)

func TestDispatcher_DeliversDetached(t *testing.T) {
	release := make(chan struct{})
	received := make(chan []models.TaggedTemplate, 1)
	d := NewDispatcher(DelegateFunc(func(_ context.Context, templates []models.TaggedTemplate) error {
		<-release
		received <- templates
		return nil
	}))
	defer d.Close()

	templates := []models.TaggedTemplate{testutil.Tag("v1", 1, "Alice")}
	require.True(t, d.Notify(templates))

	// Notify returned while the delegate is still blocked.
	templates[0].Identifier = "mutated"
	close(release)

	select {
	case got := <-received:
		require.Len(t, got, 1)
		assert.Equal(t, "Alice", got[0].Identifier)
	case <-time.After(time.Second):
		t.Fatal("delegate was not called")
	}
}

func TestDispatcher_FailuresAreSwallowed(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	d := NewDispatcher(DelegateFunc(func(context.Context, []models.TaggedTemplate) error {
		return errors.New("sink offline")
	}), WithMetrics(m))

	require.True(t, d.Notify([]models.TaggedTemplate{testutil.Tag("v1", 1, "Alice")}))
	d.Wait()

	assert.Equal(t, float64(1), promtest.ToFloat64(m.DelegateFailures))
	d.Close()
}

func TestDispatcher_PanicIsContained(t *testing.T) {
	d := NewDispatcher(DelegateFunc(func(context.Context, []models.TaggedTemplate) error {
		panic("bad delegate")
	}))

	require.True(t, d.Notify([]models.TaggedTemplate{testutil.Tag("v1", 1, "Alice")}))
	d.Close()
}

func TestDispatcher_Close(t *testing.T) {
	var calls atomic.Int32
	d := NewDispatcher(DelegateFunc(func(ctx context.Context, _ []models.TaggedTemplate) error {
		calls.Add(1)
		<-ctx.Done()
		return ctx.Err()
	}))

	require.True(t, d.Notify([]models.TaggedTemplate{testutil.Tag("v1", 1, "Alice")}))
	d.Close()
	d.Close()

	assert.False(t, d.Notify([]models.TaggedTemplate{testutil.Tag("v1", 2, "Bob")}))
	assert.Equal(t, int32(1), calls.Load())
}

func TestDispatcher_NothingToDeliver(t *testing.T) {
	assert.False(t, NewDispatcher(nil).Notify([]models.TaggedTemplate{testutil.Tag("v1", 1, "Alice")}))

	d := NewDispatcher(DelegateFunc(func(context.Context, []models.TaggedTemplate) error { return nil }))
	defer d.Close()
	assert.False(t, d.Notify(nil))
}

func TestMulti(t *testing.T) {
	var first, second int
	errSecond := errors.New("second failed")
	m := Multi{
		DelegateFunc(func(context.Context, []models.TaggedTemplate) error { first++; return nil }),
		DelegateFunc(func(context.Context, []models.TaggedTemplate) error { second++; return errSecond }),
	}

	err := m.OnTemplatesAdded(context.Background(), nil)
	assert.ErrorIs(t, err, errSecond)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
