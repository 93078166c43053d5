package packrepo

import (
	"context"
	"errors"
	"fmt"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/pack"
	"foodrescue/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package to the database. Listings are created by the
// package-management surface; the order core only reads and adjusts stock.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *pack.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a package by ID.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*pack.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReserveStock decrements quantity_available by quantity with the stock guard
// inside the UPDATE itself:
//
//	UPDATE packages SET quantity_available = quantity_available - ?
//	WHERE id = ? AND quantity_available >= ?
//
// Two requests racing for the last units serialize on the row lock; the
// second re-evaluates the guard against the committed counter and affects
// zero rows. The counter can never go negative.
func (r *GormPackageRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Where("id = ? AND quantity_available >= ?", id.Bytes(), quantity).
		UpdateColumn("quantity_available", gorm.Expr("quantity_available - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&PackageDTO{}).
			Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("package", id.String())
		}
		return errs.NewInsufficientStockError(id.String(), quantity)
	}

	return nil
}

// ReleaseStock increments quantity_available by quantity. Called when a
// pending order is cancelled and its units go back on sale.
func (r *GormPackageRepository) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("quantity_available", gorm.Expr("quantity_available + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", id.String())
	}

	return nil
}
