package driver_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("creates an off-shift driver with no active order", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "Dana")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Dana", d.Name())
		assert.False(t, d.IsOnShift())
		assert.Nil(t, d.ActiveOrder())
		assert.Zero(t, d.RejectedOrders())
		assert.False(t, d.IsFree())
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("requires a valid id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := driver.NewDriver(invalidID, "Dana")

		require.Error(t, err)
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("nil driver fails", func(t *testing.T) {
		var d *driver.Driver

		require.Equal(t, driver.ErrDriverIsNotConstructed, d.Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		d := &driver.Driver{}

		require.Error(t, d.Validate())
	})
}

func TestDriver_AssignOrder(t *testing.T) {
	t.Run("free driver on shift takes the order", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Dana")
		d.SetOnShift(true)
		orderID := kernel.NewUUID()
		now := time.Now()

		err := d.AssignOrder(orderID, now)

		require.NoError(t, err)
		require.NotNil(t, d.ActiveOrder())
		assert.True(t, d.ActiveOrder().IsEqual(orderID))
		assert.False(t, d.IsFree())
		require.NotNil(t, d.LastAssignedAt())
		assert.Equal(t, now.UTC(), *d.LastAssignedAt())
	})

	t.Run("off-shift driver refuses", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Dana")

		err := d.AssignOrder(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, driver.ErrDriverIsOffShift)
	})

	t.Run("busy driver refuses", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Dana")
		d.SetOnShift(true)
		require.NoError(t, d.AssignOrder(kernel.NewUUID(), time.Now()))

		err := d.AssignOrder(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, driver.ErrDriverIsBusy)
	})
}

func TestDriver_CompleteOrder(t *testing.T) {
	t.Run("clears the active order", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Dana")
		d.SetOnShift(true)
		orderID := kernel.NewUUID()
		require.NoError(t, d.AssignOrder(orderID, time.Now()))

		err := d.CompleteOrder(orderID)

		require.NoError(t, err)
		assert.Nil(t, d.ActiveOrder())
		assert.True(t, d.IsFree())
		assert.Zero(t, d.RejectedOrders())
	})

	t.Run("rejects a different order id", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Dana")
		d.SetOnShift(true)
		require.NoError(t, d.AssignOrder(kernel.NewUUID(), time.Now()))

		err := d.CompleteOrder(kernel.NewUUID())

		require.ErrorIs(t, err, driver.ErrOrderIsNotActive)
	})

	t.Run("rejects when no active order", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Dana")

		err := d.CompleteOrder(kernel.NewUUID())

		require.ErrorIs(t, err, driver.ErrOrderIsNotActive)
	})
}

func TestDriver_RejectOrder(t *testing.T) {
	t.Run("frees the driver and counts the rejection", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Dana")
		d.SetOnShift(true)
		orderID := kernel.NewUUID()
		require.NoError(t, d.AssignOrder(orderID, time.Now()))

		err := d.RejectOrder(orderID)

		require.NoError(t, err)
		assert.Nil(t, d.ActiveOrder())
		assert.Equal(t, 1, d.RejectedOrders())
		assert.True(t, d.IsFree())
	})

	t.Run("rejections accumulate", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Dana")
		d.SetOnShift(true)

		for i := 0; i < 3; i++ {
			orderID := kernel.NewUUID()
			require.NoError(t, d.AssignOrder(orderID, time.Now()))
			require.NoError(t, d.RejectOrder(orderID))
		}

		assert.Equal(t, 3, d.RejectedOrders())
	})
}

func TestDriver_SetOnShift(t *testing.T) {
	t.Run("going off shift keeps the active order", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Dana")
		d.SetOnShift(true)
		orderID := kernel.NewUUID()
		require.NoError(t, d.AssignOrder(orderID, time.Now()))

		d.SetOnShift(false)

		require.NotNil(t, d.ActiveOrder())
		assert.False(t, d.IsFree())
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restores full state", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		d, err := driver.RestoreDriver(id, "Dana", true, &orderID, 2, nil)

		require.NoError(t, err)
		assert.True(t, d.IsOnShift())
		assert.True(t, d.ActiveOrder().IsEqual(orderID))
		assert.Equal(t, 2, d.RejectedOrders())
	})

	t.Run("rejects negative rejection count", func(t *testing.T) {
		_, err := driver.RestoreDriver(kernel.NewUUID(), "Dana", true, nil, -1, nil)

		require.Error(t, err)
	})
}
