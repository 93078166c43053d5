package ports

import (
	"context"

	"foodrescue/internal/core/domain/model/kernel"
)

// WorkerRepository provides the worker-membership lookup consumed from the
// workforce-management subsystem. A membership only counts while it is
// active; revoked workers lose their pickup capability immediately.
type WorkerRepository interface {
	// IsActiveWorker reports whether the user holds an active worker
	// membership in the given business.
	IsActiveWorker(ctx context.Context, userID, businessID kernel.UUID) (bool, error)
}
