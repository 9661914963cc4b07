package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	items := testLineItems(t)
	fee, _ := kernel.NewMoney(500)
	tip, _ := kernel.NewMoney(0)

	cmd, err := commands.NewPlaceOrderCommand(
		orderID, restaurantID, customerID, items, fee, tip,
		order.OptionDelivery, testDeliveryAddress(t), "card",
	)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Len(t, cmd.Items(), 2)
	assert.Equal(t, "card", cmd.PaymentMethod())
}

func TestNewPlaceOrderCommand_PickupNeedsNoAddress(t *testing.T) {
	fee, _ := kernel.NewMoney(0)
	tip, _ := kernel.NewMoney(0)

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testLineItems(t), fee, tip,
		order.OptionPickup, nil, "cash",
	)

	require.NoError(t, err)
	assert.Nil(t, cmd.Address())
}

func TestNewPlaceOrderCommand_DeliveryRequiresAddress(t *testing.T) {
	fee, _ := kernel.NewMoney(500)
	tip, _ := kernel.NewMoney(0)

	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testLineItems(t), fee, tip,
		order.OptionDelivery, nil, "card",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryAddressIsMissing)
}

func TestNewPlaceOrderCommand_EmptyCart(t *testing.T) {
	fee, _ := kernel.NewMoney(500)
	tip, _ := kernel.NewMoney(0)

	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, fee, tip,
		order.OptionDelivery, testDeliveryAddress(t), "card",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewPlaceOrderCommand_MissingPaymentMethod(t *testing.T) {
	fee, _ := kernel.NewMoney(500)
	tip, _ := kernel.NewMoney(0)

	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testLineItems(t), fee, tip,
		order.OptionDelivery, testDeliveryAddress(t), "",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPaymentMethodIsRequired)
}

func TestNewPlaceOrderCommand_InvalidOrderID(t *testing.T) {
	fee, _ := kernel.NewMoney(500)
	tip, _ := kernel.NewMoney(0)

	_, err := commands.NewPlaceOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
		testLineItems(t), fee, tip,
		order.OptionDelivery, testDeliveryAddress(t), "card",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
