package ports

import (
	"context"
	"time"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the status and pickup worker ever change after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingWithPickupOver retrieves pending orders whose package
	// pickup window ended before the given time. Used by the expiry job
	// to cancel stale reservations and release their stock.
	GetAllPendingWithPickupOver(ctx context.Context, now time.Time) ([]*order.Order, error)
}
