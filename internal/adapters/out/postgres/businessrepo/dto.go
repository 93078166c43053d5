// Package businessrepo provides persistence mapping for business records.
// The order core treats businesses as read-mostly reference data owned by the
// business-management surface.
package businessrepo

import (
	"foodrescue/internal/core/domain/model/business"
	"foodrescue/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BusinessDTO represents the database structure for persisting businesses.
type BusinessDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	IsVerified bool
}

// TableName specifies the database table name for business entities.
func (BusinessDTO) TableName() string {
	return "businesses"
}

func fromDomain(b *business.Business) BusinessDTO {
	return BusinessDTO{
		ID:         b.ID().Bytes(),
		OwnerID:    b.OwnerID().Bytes(),
		Name:       b.Name(),
		IsVerified: b.IsVerified(),
	}
}

func toDomain(dto BusinessDTO) (*business.Business, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return business.NewBusiness(id, ownerID, dto.Name, dto.IsVerified)
}
