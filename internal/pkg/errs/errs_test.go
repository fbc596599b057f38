package errs_test

import (
	"errors"
	"testing"

	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "7f2a")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "7f2a", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7f2a", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("stepId", "42", cause)

		assert.Equal(t, "stepId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: stepId, ID is: 42 (cause: connection refused)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("empNo")

		assert.Equal(t, "empNo", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: empNo", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown hold type")
		err := errs.NewValueIsInvalidErrorWithCause("holdType", cause)

		assert.Equal(t, "holdType", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: holdType (cause: unknown hold type)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantityCompleted", 12, 0, 10)

		assert.Equal(t, "quantityCompleted", err.ParamName)
		assert.Equal(t, 12, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 10, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"value is invalid: 12 is quantityCompleted, min value is 0, max value is 10",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("values with newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "line\nbreak", 0, 10)
		assert.Contains(t, err.Error(), "line break")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("siteId")

		assert.Equal(t, "siteId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: siteId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("customerId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerId (cause: missing field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("orderVersion")

		assert.Equal(t, "orderVersion", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: orderVersion", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("stale read")
		err := errs.NewVersionIsInvalidErrorWithCause("orderVersion", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: orderVersion (cause: stale read)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("uom"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("qty", 5, 0, 1), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("empNo"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("v"), errs.ErrVersionIsInvalid)
}
