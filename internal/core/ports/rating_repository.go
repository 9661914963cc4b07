package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for rating aggregates.
type RatingRepository interface {
	// Add persists a new rating. At most one rating may exist per
	// (order, target) pair; a second submission returns a DuplicateError.
	Add(ctx context.Context, aggregate *rating.Rating) error

	// GetAllByOrder retrieves the ratings attached to an order.
	// An unrated order yields an empty slice, not an error.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*rating.Rating, error)
}
