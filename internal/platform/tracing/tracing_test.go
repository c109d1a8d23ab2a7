package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("none is a no-op", func(t *testing.T) {
		p, err := NewProvider(ctx, DefaultConfig())
		require.NoError(t, err)
		assert.False(t, p.Enabled())
		assert.NotNil(t, p.Tracer())
		assert.NoError(t, p.Shutdown(ctx))
	})

	t.Run("stdout exporter", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Exporter = "stdout"
		p, err := NewProvider(ctx, cfg)
		require.NoError(t, err)
		assert.True(t, p.Enabled())
		assert.NoError(t, p.Shutdown(ctx))
	})

	t.Run("unknown exporter", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Exporter = "zipkin"
		_, err := NewProvider(ctx, cfg)
		assert.ErrorContains(t, err, "unsupported trace exporter")
	})
}
