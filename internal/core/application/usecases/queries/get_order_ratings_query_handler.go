package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderRatingsQueryHandler reads an order's ratings from the database.
type GetOrderRatingsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderRatingsQueryHandler creates a handler for rating queries.
// Requires a GORM database connection for query execution.
func NewGetOrderRatingsQueryHandler(db *gorm.DB) GetOrderRatingsQueryHandler {
	return GetOrderRatingsQueryHandler{db: db}
}

// Handle executes the query. An unrated order yields an empty slice.
func (h GetOrderRatingsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderRatingsQuery,
) ([]OrderRatingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ratings := make([]OrderRatingResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			target,
			target_id,
			author_id,
			stars,
			comment,
			created_at
		FROM ratings
		WHERE order_id = ?
		ORDER BY created_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderRatingResponse
		var id, targetID, authorID uuid.UUID
		var target rating.Target

		if err = rows.Scan(
			&id,
			&target,
			&targetID,
			&authorID,
			&resp.Stars,
			&resp.Comment,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.TargetID, err = kernel.UUIDFromBytes(targetID[:]); err != nil {
			return nil, err
		}
		if resp.AuthorID, err = kernel.UUIDFromBytes(authorID[:]); err != nil {
			return nil, err
		}
		resp.Target = target.String()

		ratings = append(ratings, resp)
	}

	return ratings, rows.Err()
}
