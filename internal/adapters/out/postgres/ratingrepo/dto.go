// Package ratingrepo implements rating persistence with GORM.
package ratingrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO represents the database structure for persisting ratings.
// The composite unique index enforces at most one rating per (order, target);
// violating it is how a duplicate submission is detected.
type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_target"`
	Target    int       `gorm:"uniqueIndex:idx_ratings_order_target"`
	TargetID  uuid.UUID `gorm:"type:uuid;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid"`
	Stars     int
	Comment   string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for ratings.
func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(aggregate *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		Target:    int(aggregate.Target()),
		TargetID:  aggregate.TargetID().Bytes(),
		AuthorID:  aggregate.AuthorID().Bytes(),
		Stars:     aggregate.Stars(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	targetID, err := kernel.UUIDFromBytes(dto.TargetID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(
		id, orderID, rating.Target(dto.Target), targetID, authorID,
		dto.Stars, dto.Comment, dto.CreatedAt,
	)
}
