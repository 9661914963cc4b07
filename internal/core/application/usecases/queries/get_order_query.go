// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregates and read projection rows straight
// from the database, returning plain response structs shaped for transport.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full detail, including the
// line items.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one cart line in an order response.
type OrderItemResponse struct {
	MenuItemID     kernel.UUID
	Name           string
	Quantity       int
	UnitPrice      kernel.Money
	Customizations []string
	Note           string
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	RestaurantID   kernel.UUID
	CustomerID     kernel.UUID
	DriverID       *kernel.UUID
	DriverName     string
	Status         string
	DeliveryOption string
	Street         string
	Unit           string
	City           string
	State          string
	PostalCode     string
	Instructions   string
	PaymentMethod  string
	Items          []OrderItemResponse
	Subtotal       kernel.Money
	DeliveryFee    kernel.Money
	Tip            kernel.Money
	Total          kernel.Money
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AcceptedAt     *time.Time
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time
}
