package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler reads the pending pool from the database.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for pool queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns pending orders oldest first; an empty
// pool yields an empty slice.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]AvailableOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pool := make([]AvailableOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.restaurant_id,
			o.city,
			(SELECT COALESCE(SUM(i.quantity), 0) FROM order_items i WHERE i.order_id = o.id),
			o.tip,
			o.total,
			o.created_at
		FROM orders o
		WHERE o.status = ?
		ORDER BY o.created_at
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp AvailableOrderResponse
		var id, restaurantID uuid.UUID
		var tip, total int64

		if err = rows.Scan(
			&id,
			&restaurantID,
			&resp.City,
			&resp.ItemCount,
			&tip,
			&total,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if resp.Tip, err = kernel.MoneyFromCents(tip); err != nil {
			return nil, err
		}
		if resp.Total, err = kernel.MoneyFromCents(total); err != nil {
			return nil, err
		}

		pool = append(pool, resp)
	}

	return pool, rows.Err()
}
