package account

import (
	"errors"

	"foodrescue/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies an authenticated user performing an operation on the order
// core. It pairs the user's identity with their role; the relationship to a
// specific order or business is resolved separately at authorization time.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates a validated Actor from a user id and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor instance was properly constructed through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == Admin
}
