package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads a party's order history from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order-history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first. The role picks which
// column the party is matched against.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	column, err := partyColumn(query.Role())
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			customer_id,
			driver_id,
			driver_name,
			status,
			delivery_option,
			street,
			unit,
			city,
			state,
			postal_code,
			instructions,
			payment_method,
			subtotal,
			delivery_fee,
			tip,
			total,
			version,
			created_at,
			updated_at,
			accepted_at,
			picked_up_at,
			delivered_at
		FROM orders
		WHERE `+column+` = ?
		ORDER BY created_at DESC
	`, query.PartyID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	return orders, rows.Err()
}

// partyColumn maps a role to the orders column holding that party's id.
// The column name never comes from user input.
func partyColumn(role kernel.Role) (string, error) {
	switch role {
	case kernel.RoleCustomer:
		return "customer_id", nil
	case kernel.RoleRestaurant:
		return "restaurant_id", nil
	case kernel.RoleDriver:
		return "driver_id", nil
	default:
		return "", ErrRoleHasNoOrderList
	}
}
