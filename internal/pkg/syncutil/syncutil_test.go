package syncutil_test

import (
	"testing"

	"shopfloor/internal/pkg/syncutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusyGuard(t *testing.T) {
	t.Run("second acquire for same action and target is refused", func(t *testing.T) {
		g := syncutil.NewBusyGuard()

		require.True(t, g.TryAcquire("completeStep", "step-1"))
		assert.False(t, g.TryAcquire("completeStep", "step-1"))
	})

	t.Run("different targets are independent", func(t *testing.T) {
		g := syncutil.NewBusyGuard()

		require.True(t, g.TryAcquire("completeStep", "step-1"))
		assert.True(t, g.TryAcquire("completeStep", "step-2"))
		assert.True(t, g.TryAcquire("scanIn", "step-1"))
	})

	t.Run("release makes the key available again", func(t *testing.T) {
		g := syncutil.NewBusyGuard()

		require.True(t, g.TryAcquire("saveBoard", "order-9"))
		g.Release("saveBoard", "order-9")
		assert.True(t, g.TryAcquire("saveBoard", "order-9"))
	})

	t.Run("releasing an unheld key is a no-op", func(t *testing.T) {
		g := syncutil.NewBusyGuard()
		g.Release("saveBoard", "order-9")
		assert.True(t, g.TryAcquire("saveBoard", "order-9"))
	})
}

func TestGeneration(t *testing.T) {
	t.Run("captured generation goes stale after Next", func(t *testing.T) {
		var g syncutil.Generation

		captured := g.Current()
		require.True(t, g.IsCurrent(captured))

		g.Next()
		assert.False(t, g.IsCurrent(captured))
		assert.True(t, g.IsCurrent(g.Current()))
	})

	t.Run("Next returns the new value", func(t *testing.T) {
		var g syncutil.Generation
		first := g.Next()
		second := g.Next()
		assert.Equal(t, first+1, second)
	})
}
