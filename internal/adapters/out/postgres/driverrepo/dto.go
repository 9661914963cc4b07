// Package driverrepo implements driver persistence with GORM.
package driverrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	OnShift        bool       `gorm:"index"`
	ActiveOrderID  *uuid.UUID `gorm:"type:uuid"`
	RejectedOrders int
	LastAssignedAt *time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	var activeOrderID *uuid.UUID
	if id := aggregate.ActiveOrder(); id != nil {
		raw := id.Bytes()
		activeOrderID = &raw
	}

	return DriverDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		OnShift:        aggregate.IsOnShift(),
		ActiveOrderID:  activeOrderID,
		RejectedOrders: aggregate.RejectedOrders(),
		LastAssignedAt: aggregate.LastAssignedAt(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var activeOrderID *kernel.UUID
	if dto.ActiveOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.ActiveOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		activeOrderID = &oID
	}

	return driver.RestoreDriver(id, dto.Name, dto.OnShift, activeOrderID, dto.RejectedOrders, dto.LastAssignedAt)
}
