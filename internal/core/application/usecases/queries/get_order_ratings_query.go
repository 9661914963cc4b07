package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderRatingsQueryIsNotConstructed = errors.New(
	"GetOrderRatingsQuery must be created via NewGetOrderRatingsQuery constructor",
)

// GetOrderRatingsQuery retrieves the ratings attached to one order. A
// delivered order has at most two: one for the restaurant, one for the
// driver.
type GetOrderRatingsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderRatingsQuery creates a query for an order's ratings.
func NewGetOrderRatingsQuery(orderID kernel.UUID) (GetOrderRatingsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderRatingsQuery{}, err
	}

	return GetOrderRatingsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderRatingsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderRatingsQueryIsNotConstructed)
}

// OrderID returns the rated order's identifier.
func (q GetOrderRatingsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderRatingResponse is one rating on an order.
type OrderRatingResponse struct {
	ID        kernel.UUID
	Target    string
	TargetID  kernel.UUID
	AuthorID  kernel.UUID
	Stars     int
	Comment   string
	CreatedAt time.Time
}
