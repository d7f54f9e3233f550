package order_test

import (
	"strings"
	"testing"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/order"
	"bestcat/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, 1250)
	require.NoError(t, err)
	return []order.Item{item}
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Delivery, "123 Main St", "", validItems(t),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validUserID := kernel.NewUUID()
	validStoreID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		items := validItems(t)

		o, err := order.NewOrder(validID, validUserID, validStoreID,
			order.Delivery, "123 Main St", "extra napkins", items)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.UserID().IsEqual(validUserID))
		assert.True(t, o.StoreID().IsEqual(validStoreID))
		assert.Equal(t, order.Delivery, o.OrderType())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "123 Main St", o.Address())
		assert.Equal(t, "extra napkins", o.RequestNotes())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validUserID, validStoreID,
			order.Delivery, "123 Main St", "", validItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUserID, validStoreID,
			order.Delivery, "123 Main St", "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should fail with blank address", func(t *testing.T) {
		for _, address := range []string{"", "   ", "\t\n"} {
			o, err := order.NewOrder(validID, validUserID, validStoreID,
				order.Delivery, address, "", validItems(t))

			require.Error(t, err)
			assert.Nil(t, o)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should fail with overlong address", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUserID, validStoreID,
			order.Delivery, strings.Repeat("a", 501), "", validItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept address of exactly 500 characters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUserID, validStoreID,
			order.Delivery, strings.Repeat("a", 500), "", validItems(t))

		require.NoError(t, err)
		assert.NotNil(t, o)
	})

	t.Run("should fail with invalid order type", func(t *testing.T) {
		o, err := order.NewOrder(validID, validUserID, validStoreID,
			order.TypeUnknown, "123 Main St", "", validItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validUserID, validStoreID,
			order.Delivery, "", "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "order items")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order in any valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Placed, order.Accepted, order.InProgress, order.Delivered, order.Cancelled,
		} {
			o, err := order.RestoreOrder(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				order.Pickup, status, "123 Main St", "", validItems(t),
			)

			require.NoError(t, err, status.String())
			assert.Equal(t, status, o.Status())
			require.NoError(t, o.Validate())
		}
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Pickup, order.Unknown, "123 Main St", "", validItems(t),
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for directly instantiated order", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should add item while Placed", func(t *testing.T) {
		o := newPlacedOrder(t)
		item, err := order.NewItem(kernel.NewUUID(), 1, 500)
		require.NoError(t, err)

		require.NoError(t, o.AddItem(item))

		items := o.Items()
		require.Len(t, items, 2)
		assert.True(t, items[1].MenuID().IsEqual(item.MenuID()))
	})

	t.Run("should fail with InvalidState after acceptance", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.TransitionTo(order.Accepted))
		item, _ := order.NewItem(kernel.NewUUID(), 1, 500)

		err := o.AddItem(item)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should fail with InvalidState in terminal statuses", func(t *testing.T) {
		cancelled := newPlacedOrder(t)
		require.NoError(t, cancelled.Cancel())

		delivered := newPlacedOrder(t)
		require.NoError(t, delivered.TransitionTo(order.Accepted))
		require.NoError(t, delivered.TransitionTo(order.InProgress))
		require.NoError(t, delivered.TransitionTo(order.Delivered))

		item, _ := order.NewItem(kernel.NewUUID(), 1, 500)
		require.ErrorIs(t, cancelled.AddItem(item), errs.ErrInvalidState)
		require.ErrorIs(t, delivered.AddItem(item), errs.ErrInvalidState)
	})

	t.Run("should reject unconstructed item", func(t *testing.T) {
		o := newPlacedOrder(t)

		err := o.AddItem(order.Item{})

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the happy path in sequence", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.TransitionTo(order.Accepted))
		assert.Equal(t, order.Accepted, o.Status())

		require.NoError(t, o.TransitionTo(order.InProgress))
		assert.Equal(t, order.InProgress, o.Status())

		require.NoError(t, o.TransitionTo(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should fail direct Placed to Delivered", func(t *testing.T) {
		o := newPlacedOrder(t)

		err := o.TransitionTo(order.Delivered)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("should be idempotent for the current status", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.TransitionTo(order.Accepted))

		require.NoError(t, o.TransitionTo(order.Accepted))
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should leave status untouched on invalid transition", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.TransitionTo(order.Accepted))

		err := o.TransitionTo(order.Placed)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel from Placed, Accepted and InProgress", func(t *testing.T) {
		placed := newPlacedOrder(t)
		require.NoError(t, placed.Cancel())
		assert.Equal(t, order.Cancelled, placed.Status())

		accepted := newPlacedOrder(t)
		require.NoError(t, accepted.TransitionTo(order.Accepted))
		require.NoError(t, accepted.Cancel())
		assert.Equal(t, order.Cancelled, accepted.Status())

		inProgress := newPlacedOrder(t)
		require.NoError(t, inProgress.TransitionTo(order.Accepted))
		require.NoError(t, inProgress.TransitionTo(order.InProgress))
		require.NoError(t, inProgress.Cancel())
		assert.Equal(t, order.Cancelled, inProgress.Status())
	})

	t.Run("should fail from Delivered", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.TransitionTo(order.Accepted))
		require.NoError(t, o.TransitionTo(order.InProgress))
		require.NoError(t, o.TransitionTo(order.Delivered))

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cancelling a cancelled order is a no-op success", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Cancel())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

// Mirrors the accept-then-cancel flow end to end: once cancelled, the
// order can never be accepted again.
func TestOrder_AcceptCancelScenario(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), 2, 900)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Delivery, "123 Main St", "", []order.Item{item},
	)
	require.NoError(t, err)
	assert.Equal(t, order.Placed, o.Status())

	require.NoError(t, o.TransitionTo(order.Accepted))
	assert.Equal(t, order.Accepted, o.Status())

	require.NoError(t, o.TransitionTo(order.Cancelled))
	assert.Equal(t, order.Cancelled, o.Status())

	err = o.TransitionTo(order.Accepted)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Cancelled, o.Status())
}

func TestOrder_ItemsIsDetached(t *testing.T) {
	o := newPlacedOrder(t)

	items := o.Items()
	items[0] = order.Item{}

	assert.NoError(t, o.Items()[0].Validate())
}
