package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the unassigned pool: pending orders that
// any on-shift driver may claim. Oldest first, so the longest-waiting order
// is at the top of every driver's list.
//
// Example:
//
//	query := NewGetAvailableOrdersQuery()
//	handler := NewGetAvailableOrdersQueryHandler(db)
//
//	pool, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load the pool: %w", err)
//	}
//	fmt.Printf("%d orders waiting for a driver\n", len(pool))
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the unassigned pool.
// This is a parameterless query.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// AvailableOrderResponse is one claimable order in the pool, trimmed to what
// a driver needs for the claim decision.
type AvailableOrderResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	City         string
	ItemCount    int
	Tip          kernel.Money
	Total        kernel.Money
	CreatedAt    time.Time
}
