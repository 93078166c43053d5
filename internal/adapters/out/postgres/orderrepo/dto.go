// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing for
// efficient querying by customer, package, and status.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;index"`
	PackageID  uuid.UUID  `gorm:"type:uuid;index"`
	Quantity   int
	TotalPrice float64
	MoneySaved float64
	CO2SavedKg float64    `gorm:"column:co2_saved_kg"`
	Status     int        `gorm:"index"`
	PickedUpBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional pickup worker stamp.
func fromDomain(order *order.Order) OrderDTO {
	var pickedUpBy *uuid.UUID
	if id := order.PickedUpBy(); id != nil {
		raw := id.Bytes()
		pickedUpBy = &raw
	}

	return OrderDTO{
		ID:         order.ID().Bytes(),
		UserID:     order.UserID().Bytes(),
		PackageID:  order.PackageID().Bytes(),
		Quantity:   order.Quantity(),
		TotalPrice: order.TotalPrice(),
		MoneySaved: order.MoneySaved(),
		CO2SavedKg: order.CO2SavedKg(),
		Status:     int(order.Status()),
		PickedUpBy: pickedUpBy,
		CreatedAt:  order.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and pickup worker using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}

	var pickedUpBy *kernel.UUID
	if dto.PickedUpBy != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.PickedUpBy)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		pickedUpBy = &wID
	}

	return order.RestoreOrder(id, userID, packageID, dto.Quantity,
		dto.TotalPrice, dto.MoneySaved, dto.CO2SavedKg,
		dto.CreatedAt, order.Status(dto.Status), pickedUpBy)
}
