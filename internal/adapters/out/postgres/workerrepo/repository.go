// Package workerrepo provides the worker-membership lookup backed by the
// business_workers table owned by the workforce-management surface.
package workerrepo

import (
	"context"

	"foodrescue/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerDTO represents one worker membership row.
type WorkerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	BusinessID uuid.UUID `gorm:"type:uuid;index"`
	IsActive   bool
}

// TableName specifies the database table name for worker memberships.
func (WorkerDTO) TableName() string {
	return "business_workers"
}

// GormWorkerRepository implements WorkerRepository using GORM.
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewGormWorkerRepository creates a new GORM worker repository.
func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

// IsActiveWorker reports whether the user holds an active membership in the
// given business. Revoked memberships keep their row with is_active = false.
func (r *GormWorkerRepository) IsActiveWorker(
	ctx context.Context,
	userID, businessID kernel.UUID,
) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}
	if err := businessID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&WorkerDTO{}).
		Where("user_id = ? AND business_id = ? AND is_active", userID.Bytes(), businessID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
