// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper
// indexing for the pool query (status) and the per-party history queries.
//
// Timestamps are managed by the aggregate, so GORM's automatic stamping is
// disabled. The version column backs optimistic locking: every accepted
// transition bumps it, and Update is conditional on the previous value.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID   uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;index"`
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	DriverName     string
	Status         int `gorm:"index"`
	DeliveryOption int
	Street         string
	Unit           string
	City           string
	State          string
	PostalCode     string
	Instructions   string
	PaymentMethod  string
	Subtotal       int64
	DeliveryFee    int64
	Tip            int64
	Total          int64
	Version        int64
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
	AcceptedAt     *time.Time
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one cart line of an order. Items are written once
// at placement and never updated; position preserves the cart order.
type OrderItemDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Position       int
	MenuItemID     uuid.UUID `gorm:"type:uuid"`
	Name           string
	Quantity       int
	UnitPrice      int64
	Customizations string
	Note           string
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	dto := OrderDTO{
		ID:             aggregate.ID().Bytes(),
		RestaurantID:   aggregate.RestaurantID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		DriverID:       driverID,
		DriverName:     aggregate.DriverName(),
		Status:         int(aggregate.Status()),
		DeliveryOption: int(aggregate.DeliveryOption()),
		PaymentMethod:  aggregate.PaymentMethod(),
		Subtotal:       aggregate.Subtotal().Cents(),
		DeliveryFee:    aggregate.DeliveryFee().Cents(),
		Tip:            aggregate.Tip().Cents(),
		Total:          aggregate.Total().Cents(),
		Version:        aggregate.Version(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		AcceptedAt:     aggregate.AcceptedAt(),
		PickedUpAt:     aggregate.PickedUpAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
	}

	if addr := aggregate.Address(); addr != nil {
		dto.Street = addr.Street()
		dto.Unit = addr.Unit()
		dto.City = addr.City()
		dto.State = addr.State()
		dto.PostalCode = addr.PostalCode()
		dto.Instructions = addr.Instructions()
	}

	for i, item := range aggregate.Items() {
		itemDTO, err := itemFromDomain(aggregate.ID().Bytes(), i, item)
		if err != nil {
			return OrderDTO{}, err
		}
		dto.Items = append(dto.Items, itemDTO)
	}

	return dto, nil
}

func itemFromDomain(orderID uuid.UUID, position int, item order.LineItem) (OrderItemDTO, error) {
	customizations := ""
	if len(item.Customizations()) > 0 {
		raw, err := json.Marshal(item.Customizations())
		if err != nil {
			return OrderItemDTO{}, err
		}
		customizations = string(raw)
	}

	return OrderItemDTO{
		OrderID:        orderID,
		Position:       position,
		MenuItemID:     item.MenuItemID().Bytes(),
		Name:           item.Name(),
		Quantity:       item.Quantity(),
		UnitPrice:      item.UnitPrice().Cents(),
		Customizations: customizations,
		Note:           item.Note(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-validates
// the pricing invariant and the status/driver consistency rule.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	var address *order.Address
	if dto.Street != "" {
		addr, addrErr := order.NewAddress(
			dto.Street, dto.Unit, dto.City, dto.State, dto.PostalCode, dto.Instructions,
		)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &addr
	}

	subtotal, err := kernel.MoneyFromCents(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.MoneyFromCents(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	tip, err := kernel.MoneyFromCents(dto.Tip)
	if err != nil {
		return nil, err
	}
	total, err := kernel.MoneyFromCents(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:             id,
		RestaurantID:   restaurantID,
		CustomerID:     customerID,
		DriverID:       driverID,
		DriverName:     dto.DriverName,
		Items:          items,
		Subtotal:       subtotal,
		DeliveryFee:    deliveryFee,
		Tip:            tip,
		Total:          total,
		DeliveryOption: order.DeliveryOption(dto.DeliveryOption),
		Address:        address,
		PaymentMethod:  dto.PaymentMethod,
		Status:         order.Status(dto.Status),
		Version:        dto.Version,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
		AcceptedAt:     dto.AcceptedAt,
		PickedUpAt:     dto.PickedUpAt,
		DeliveredAt:    dto.DeliveredAt,
	})
}

func itemsToDomain(dtos []OrderItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(dtos))

	for _, dto := range dtos {
		menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
		if err != nil {
			return nil, err
		}

		unitPrice, err := kernel.MoneyFromCents(dto.UnitPrice)
		if err != nil {
			return nil, err
		}

		var customizations []string
		if dto.Customizations != "" {
			if err = json.Unmarshal([]byte(dto.Customizations), &customizations); err != nil {
				return nil, err
			}
		}

		item, err := order.NewLineItem(menuItemID, dto.Name, dto.Quantity, unitPrice, customizations, dto.Note)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
