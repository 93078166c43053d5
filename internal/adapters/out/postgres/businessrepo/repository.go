package businessrepo

import (
	"context"
	"errors"

	"foodrescue/internal/core/domain/model/business"
	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBusinessRepository implements BusinessRepository using GORM.
type GormBusinessRepository struct {
	db *gorm.DB
}

// NewGormBusinessRepository creates a new GORM business repository.
func NewGormBusinessRepository(db *gorm.DB) *GormBusinessRepository {
	return &GormBusinessRepository{db: db}
}

// Add saves a new business to the database.
func (r *GormBusinessRepository) Add(ctx context.Context, aggregate *business.Business) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a business by ID.
func (r *GormBusinessRepository) Get(ctx context.Context, id kernel.UUID) (*business.Business, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BusinessDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("business", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
