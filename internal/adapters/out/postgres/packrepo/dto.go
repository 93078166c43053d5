// Package packrepo provides data transfer objects and mapping functions for package persistence.
// Besides aggregate lookups it owns the conditional stock mutations that keep
// the quantity_available counter from ever going negative under concurrency.
package packrepo

import (
	"time"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/pack"

	"github.com/google/uuid"
)

// PackageDTO represents the database structure for persisting package aggregates.
type PackageDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID        uuid.UUID `gorm:"type:uuid;index"`
	Name              string
	Price             float64
	OriginalPrice     float64
	EstimatedWeight   float64
	QuantityAvailable int
	PickupStartTime   time.Time
	PickupEndTime     time.Time `gorm:"index"`
	IsActive          bool
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts a package domain aggregate to its database representation.
func fromDomain(p *pack.Package) PackageDTO {
	return PackageDTO{
		ID:                p.ID().Bytes(),
		BusinessID:        p.BusinessID().Bytes(),
		Name:              p.Name(),
		Price:             p.Price(),
		OriginalPrice:     p.OriginalPrice(),
		EstimatedWeight:   p.EstimatedWeight(),
		QuantityAvailable: p.QuantityAvailable(),
		PickupStartTime:   p.PickupStartTime(),
		PickupEndTime:     p.PickupEndTime(),
		IsActive:          p.IsActive(),
	}
}

// toDomain converts a database DTO to a package domain aggregate.
func toDomain(dto PackageDTO) (*pack.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	businessID, err := kernel.UUIDFromBytes(dto.BusinessID[:])
	if err != nil {
		return nil, err
	}

	return pack.RestorePackage(id, businessID, dto.Name,
		dto.Price, dto.OriginalPrice, dto.EstimatedWeight,
		dto.QuantityAvailable, dto.PickupStartTime, dto.PickupEndTime, dto.IsActive)
}
