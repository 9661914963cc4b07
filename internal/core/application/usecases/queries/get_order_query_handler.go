package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order row and its items from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			quantity,
			unit_price,
			customizations,
			note
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)

	for rows.Next() {
		var item OrderItemResponse
		var menuItemID uuid.UUID
		var unitPrice int64
		var customizations string

		if err = rows.Scan(
			&menuItemID,
			&item.Name,
			&item.Quantity,
			&unitPrice,
			&customizations,
			&item.Note,
		); err != nil {
			return nil, err
		}

		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.MoneyFromCents(unitPrice); err != nil {
			return nil, err
		}
		if customizations != "" {
			if err = json.Unmarshal([]byte(customizations), &item.Customizations); err != nil {
				return nil, err
			}
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id, restaurantID, customerID uuid.UUID
	var driverID *uuid.UUID
	var driverName, instructions, unit sql.NullString
	var status order.Status
	var deliveryOption order.DeliveryOption
	var subtotal, deliveryFee, tip, total int64

	err := row.Scan(
		&id,
		&restaurantID,
		&customerID,
		&driverID,
		&driverName,
		&status,
		&deliveryOption,
		&resp.Street,
		&unit,
		&resp.City,
		&resp.State,
		&resp.PostalCode,
		&instructions,
		&resp.PaymentMethod,
		&subtotal,
		&deliveryFee,
		&tip,
		&total,
		&resp.Version,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.AcceptedAt,
		&resp.PickedUpAt,
		&resp.DeliveredAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if driverID != nil {
		parsed, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.DriverID = &parsed
	}

	resp.DriverName = driverName.String
	resp.Unit = unit.String
	resp.Instructions = instructions.String
	resp.Status = status.String()
	resp.DeliveryOption = deliveryOption.String()

	if resp.Subtotal, err = kernel.MoneyFromCents(subtotal); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DeliveryFee, err = kernel.MoneyFromCents(deliveryFee); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Tip, err = kernel.MoneyFromCents(tip); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = kernel.MoneyFromCents(total); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
