package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired         = errors.New("at least one line item is required")
	ErrPaymentMethodIsRequired  = errors.New("payment method is required")
	ErrDeliveryAddressIsMissing = errors.New("delivery orders require an address")
)

// PlaceOrderCommand represents a customer's request to place a new order with
// a restaurant. Encapsulates the cart contents, fees, and fulfillment details.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    kernel.NewUUID(), restaurantID, customerID,
//	    items, fee, tip, order.OptionDelivery, &addr, "card",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	restaurantID  kernel.UUID
	customerID    kernel.UUID
	items         []order.LineItem
	deliveryFee   kernel.Money
	tip           kernel.Money
	option        order.DeliveryOption
	address       *order.Address
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates identifiers, requires at least one item and a payment method,
// and requires an address when the fulfillment option is delivery.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	items []order.LineItem,
	deliveryFee kernel.Money,
	tip kernel.Money,
	option order.DeliveryOption,
	address *order.Address,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setMoney(deliveryFee, tip),
		cmd.setFulfillment(option, address),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the client-generated identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// RestaurantID returns the fulfilling restaurant's identifier.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Items returns the cart contents.
func (c PlaceOrderCommand) Items() []order.LineItem { return c.items }

// DeliveryFee returns the delivery fee.
func (c PlaceOrderCommand) DeliveryFee() kernel.Money { return c.deliveryFee }

// Tip returns the driver tip.
func (c PlaceOrderCommand) Tip() kernel.Money { return c.tip }

// Option returns the fulfillment option.
func (c PlaceOrderCommand) Option() order.DeliveryOption { return c.option }

// Address returns the delivery address, nil for pickup orders.
func (c PlaceOrderCommand) Address() *order.Address { return c.address }

// PaymentMethod returns the payment method token.
func (c PlaceOrderCommand) PaymentMethod() string { return c.paymentMethod }

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setMoney(deliveryFee, tip kernel.Money) error {
	if err := errors.Join(deliveryFee.Validate(), tip.Validate()); err != nil {
		return err
	}

	c.deliveryFee = deliveryFee
	c.tip = tip
	return nil
}

func (c *PlaceOrderCommand) setFulfillment(option order.DeliveryOption, address *order.Address) error {
	if err := option.Validate(); err != nil {
		return err
	}
	if option == order.OptionDelivery && address == nil {
		return ErrDeliveryAddressIsMissing
	}

	c.option = option
	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}
