package guard_test

import (
	"errors"
	"testing"

	"shopfloor/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotConstructed = errors.New("widget must be created via NewWidget")

type widget struct {
	guard guard.ConstructorGuard
}

func newWidget() widget {
	return widget{guard: guard.NewConstructorGuard()}
}

func TestConstructorGuard(t *testing.T) {
	t.Run("constructed object passes validation", func(t *testing.T) {
		w := newWidget()
		require.NoError(t, w.guard.Validate(errNotConstructed))
	})

	t.Run("zero value fails with supplied error", func(t *testing.T) {
		var w widget
		err := w.guard.Validate(errNotConstructed)
		assert.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("zero value fails with default error when none supplied", func(t *testing.T) {
		var w widget
		err := w.guard.Validate(nil)
		assert.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}
