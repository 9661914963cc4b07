package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using the
	// aggregate's version for optimistic locking. Returns a
	// ConcurrencyConflictError when the stored row has moved on since the
	// aggregate was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order in Pending status.
	// Used by the dispatch job to find orders awaiting a driver.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetAllInPendingStatus retrieves the unassigned pool, oldest first.
	// This is what on-shift drivers browse when looking for work.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves a customer's orders, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllByRestaurant retrieves a restaurant's orders, newest first.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetAllByDriver retrieves the orders currently or previously assigned to
	// a driver, newest first.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)
}
