package ratingrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rating. A second rating for the same (order, target) pair
// trips the unique index and comes back as a DuplicateError.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateErrorWithCause("rating", aggregate.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByOrder retrieves the ratings attached to an order.
func (r *GormRatingRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*rating.Rating, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RatingDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	ratings := make([]*rating.Rating, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}

	return ratings, nil
}
