// Package ports defines repository interfaces for the order core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/pack"
)

// PackageRepository defines the persistence contract for package aggregates.
// Besides lookups it owns the two atomic stock mutations; the remaining
// quantity counter is never written any other way.
type PackageRepository interface {
	// Get retrieves a package aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pack.Package, error)

	// ReserveStock decrements quantity_available by quantity, but only if
	// enough stock remains. The decrement and its guard execute as one
	// conditional statement in the database, never as a read-then-write,
	// so concurrent reservations can never jointly oversell.
	//
	// Returns InsufficientStockError when the guard rejects the update.
	// Nothing is mutated on failure.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// ReleaseStock increments quantity_available by quantity. Used
	// exclusively when a pending order is cancelled. Atomic with respect
	// to concurrent ReserveStock/ReleaseStock calls on the same package.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error
}
