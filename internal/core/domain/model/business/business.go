// Package business contains the read model of a business as seen by the order
// core. Businesses are created and managed by the business-management
// subsystem; this core only consults the owner and the verification flag when
// authorizing reservations and order transitions.
package business

import (
	"errors"

	"foodrescue/internal/core/domain/model/kernel"
)

// ErrBusinessIsNotConstructed is returned when a Business instance was not
// created through the NewBusiness factory method.
var ErrBusinessIsNotConstructed = errors.New("Business must be created via NewBusiness constructor")

// Business represents the business offering surplus-food packages.
//
// Business follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid owner identifier
//   - Only verified businesses can accept reservations
type Business struct {
	id         kernel.UUID
	ownerID    kernel.UUID
	name       string
	isVerified bool

	isConstructed bool
}

// NewBusiness creates a new Business instance with validation.
func NewBusiness(id, ownerID kernel.UUID, name string, isVerified bool) (*Business, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	return &Business{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		isVerified:    isVerified,
		isConstructed: true,
	}, nil
}

// Validate ensures the Business instance was properly constructed through NewBusiness.
func (b *Business) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBusinessIsNotConstructed
	}
	return nil
}

// ID returns the business's unique identifier.
func (b *Business) ID() kernel.UUID {
	return b.id
}

// OwnerID returns the identifier of the user who manages this business.
func (b *Business) OwnerID() kernel.UUID {
	return b.ownerID
}

// Name returns the business's display name.
func (b *Business) Name() string {
	return b.name
}

// IsVerified reports whether the business has passed verification.
// Packages of unverified businesses cannot be reserved.
func (b *Business) IsVerified() bool {
	return b.isVerified
}

// IsOwnedBy reports whether the given user owns this business.
func (b *Business) IsOwnedBy(userID kernel.UUID) bool {
	return b.ownerID.IsEqual(userID)
}
