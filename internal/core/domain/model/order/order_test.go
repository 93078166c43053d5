package order_test

import (
	"testing"
	"time"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/order"
	"foodrescue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		2, 70.0, 130.0, 2.5,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validUser := kernel.NewUUID()
	validPackage := kernel.NewUUID()

	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUser, validPackage, 2, 70.0, 130.0, 2.5)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.UserID().IsEqual(validUser))
		assert.True(t, o.PackageID().IsEqual(validPackage))
		assert.Equal(t, 2, o.Quantity())
		assert.InDelta(t, 70.0, o.TotalPrice(), 0.001)
		assert.InDelta(t, 130.0, o.MoneySaved(), 0.001)
		assert.InDelta(t, 2.5, o.CO2SavedKg(), 0.001)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.PickedUpBy())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validUser, validPackage, 2, 70.0, 130.0, 2.5)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with missing user or package", func(t *testing.T) {
		var invalid kernel.UUID

		o, err := order.NewOrder(validID, invalid, invalid, 2, 70.0, 130.0, 2.5)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "userID")
		assert.Contains(t, err.Error(), "packageID")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUser, validPackage, 0, 0, 0, 0)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should fail with negative savings", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUser, validPackage, 1, 35.0, -5.0, 1.25)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "money saved is invalid")
	})

	t.Run("should accept minimum valid quantity", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUser, validPackage, 1, 35.0, 65.0, 1.25)

		require.NoError(t, err)
		assert.Equal(t, 1, o.Quantity())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	userID := kernel.NewUUID()
	packageID := kernel.NewUUID()
	placedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("should restore confirmed order", func(t *testing.T) {
		o, err := order.RestoreOrder(id, userID, packageID, 2, 70.0, 130.0, 2.5,
			placedAt, order.Confirmed, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Nil(t, o.PickedUpBy())
		assert.True(t, o.CreatedAt().Equal(placedAt))
	})

	t.Run("should restore picked-up order with worker", func(t *testing.T) {
		workerID := kernel.NewUUID()

		o, err := order.RestoreOrder(id, userID, packageID, 2, 70.0, 130.0, 2.5,
			placedAt, order.PickedUp, &workerID)

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, o.Status())
		require.NotNil(t, o.PickedUpBy())
		assert.True(t, o.PickedUpBy().IsEqual(workerID))
	})

	t.Run("should reject picked-up order without worker", func(t *testing.T) {
		o, err := order.RestoreOrder(id, userID, packageID, 2, 70.0, 130.0, 2.5,
			placedAt, order.PickedUp, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject pending order with worker", func(t *testing.T) {
		workerID := kernel.NewUUID()

		o, err := order.RestoreOrder(id, userID, packageID, 2, 70.0, 130.0, 2.5,
			placedAt, order.Pending, &workerID)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(id, userID, packageID, 2, 70.0, 130.0, 2.5,
			placedAt, order.Unknown, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject zero creation time", func(t *testing.T) {
		o, err := order.RestoreOrder(id, userID, packageID, 2, 70.0, 130.0, 2.5,
			time.Time{}, order.Confirmed, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should reject confirming twice", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Confirm())

		err := o.Confirm()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject cancelling confirmed order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Confirm())

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_MarkPickedUp(t *testing.T) {
	workerID := kernel.NewUUID()

	t.Run("should pick up confirmed order and stamp worker", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Confirm())

		require.NoError(t, o.MarkPickedUp(workerID))
		assert.Equal(t, order.PickedUp, o.Status())
		require.NotNil(t, o.PickedUpBy())
		assert.True(t, o.PickedUpBy().IsEqual(workerID))
	})

	t.Run("should reject pickup of pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.MarkPickedUp(workerID)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.PickedUpBy())
	})

	t.Run("should reject invalid worker id", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Confirm())
		var invalidWorker kernel.UUID

		err := o.MarkPickedUp(invalidWorker)

		require.Error(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_TerminalImmutability(t *testing.T) {
	t.Run("picked-up order rejects all transitions unchanged", func(t *testing.T) {
		workerID := kernel.NewUUID()
		o := newPendingOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.MarkPickedUp(workerID))

		require.ErrorIs(t, o.Confirm(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.MarkPickedUp(kernel.NewUUID()), errs.ErrInvalidTransition)

		assert.Equal(t, order.PickedUp, o.Status())
		assert.True(t, o.PickedUpBy().IsEqual(workerID))
	})

	t.Run("cancelled order rejects all transitions unchanged", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Confirm(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.MarkPickedUp(kernel.NewUUID()), errs.ErrInvalidTransition)

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.PickedUpBy())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		o := &order.Order{}

		require.Error(t, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1 := newPendingOrder(t)
	o2 := newPendingOrder(t)

	assert.True(t, o1.IsEqual(o1))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_IsOwnedBy(t *testing.T) {
	userID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), userID, kernel.NewUUID(), 1, 35.0, 65.0, 1.25)
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(userID))
	assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
}
