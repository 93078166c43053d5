// Package userrepo resolves authenticated user ids to actors from the users
// table owned by the identity surface. Only the role column matters here.
package userrepo

import (
	"context"
	"errors"

	"foodrescue/internal/core/domain/model/account"
	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents one user row as seen by the order core.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role int
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetActor retrieves the actor (identity plus role) for a user id.
func (r *GormUserRepository) GetActor(ctx context.Context, id kernel.UUID) (account.Actor, error) {
	if err := id.Validate(); err != nil {
		return account.Actor{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Actor{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return account.Actor{}, err
	}

	userID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return account.Actor{}, err
	}

	return account.NewActor(userID, account.Role(dto.Role))
}
