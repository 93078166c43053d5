package errs_test

import (
	"errors"
	"testing"

	"foodrescue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("packageId", "123")

		assert.Equal(t, "packageId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("packageId", "123", cause)

		assert.Equal(t, "packageId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: packageId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 15, 1, 10)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 15, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 15 is quantity, min value is 1, max value is 10", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("userId")

		assert.Equal(t, "userId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: userId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("userId", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: userId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("pickup window already started")

		assert.Equal(t, "pickup window already started", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "state is invalid: pickup window already started", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("package is inactive")
		err := errs.NewInvalidStateErrorWithCause("package is not available", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "state is invalid: package is not available (cause: package is inactive)", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("pkg-1", 3)

	assert.Equal(t, "pkg-1", err.PackageID)
	assert.Equal(t, 3, err.Requested)
	assert.Equal(t, "insufficient stock: requested 3 of package pkg-1", err.Error())
	assert.Equal(t, errs.ErrInsufficientStock, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("actor-1", "cancel order")

	assert.Equal(t, "actor-1", err.ActorID)
	assert.Equal(t, "cancel order", err.Action)
	assert.Equal(t, "access denied: actor actor-1 cannot cancel order", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("PickedUp", "Confirmed")

	assert.Equal(t, "PickedUp", err.From)
	assert.Equal(t, "Confirmed", err.To)
	assert.Equal(t, "invalid status transition: from PickedUp to Confirmed", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrInsufficientStock)
		require.Error(t, errs.ErrForbidden)
		require.Error(t, errs.ErrInvalidTransition)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "state is invalid", errs.ErrInvalidState.Error())
		assert.Equal(t, "insufficient stock", errs.ErrInsufficientStock.Error())
		assert.Equal(t, "access denied", errs.ErrForbidden.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("packageId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 15, 1, 10), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("userId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidStateError("package is not available"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewInsufficientStockError("pkg-1", 3), errs.ErrInsufficientStock)
		require.ErrorIs(t, errs.NewForbiddenError("actor-1", "view order"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewInvalidTransitionError("Pending", "PickedUp"), errs.ErrInvalidTransition)
	})
}
