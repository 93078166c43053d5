package ports

import (
	"context"

	"foodrescue/internal/core/domain/model/business"
	"foodrescue/internal/core/domain/model/kernel"
)

// BusinessRepository provides read access to businesses. Businesses are
// managed by the business-management subsystem; the order core only needs
// the owner and verification flag for authorization and reservation checks.
type BusinessRepository interface {
	// Get retrieves a business by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*business.Business, error)
}
