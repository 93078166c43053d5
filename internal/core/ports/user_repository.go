package ports

import (
	"context"

	"foodrescue/internal/core/domain/model/account"
	"foodrescue/internal/core/domain/model/kernel"
)

// UserRepository resolves authenticated user ids to actors. User records are
// owned by the identity subsystem; the order core only reads the role.
type UserRepository interface {
	// GetActor retrieves the actor (identity plus role) for a user id.
	GetActor(ctx context.Context, id kernel.UUID) (account.Actor, error)
}
