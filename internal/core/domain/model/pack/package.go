package pack

import (
	"errors"
	"fmt"
	"time"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through the NewPackage or RestorePackage factory methods.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package represents a surplus-food offer in the system. It is the aggregate
// that owns the remaining stock counter for a listing.
//
// Package follows these invariants:
//   - Must have valid package and business identifiers
//   - Discounted price never exceeds the original price
//   - Estimated weight is positive
//   - quantity_available is never negative
//   - Pickup window end is after its start
//
// The stock counter is mutated exclusively through the package repository's
// ReserveStock/ReleaseStock operations; the aggregate itself stays a
// consistent snapshot of what was loaded.
type Package struct {
	// id is the unique identifier for the package
	id kernel.UUID

	// businessID identifies the business offering the package
	businessID kernel.UUID

	// name is the customer-facing title of the offer
	name string

	// price is the discounted price per unit
	price float64

	// originalPrice is the undiscounted price per unit (price <= originalPrice)
	originalPrice float64

	// estimatedWeight is the food weight per unit in kilograms (must be positive)
	estimatedWeight float64

	// quantityAvailable is the remaining stock (never negative)
	quantityAvailable int

	// pickupStartTime and pickupEndTime bound the pickup window
	pickupStartTime time.Time
	pickupEndTime   time.Time

	// isActive marks whether the listing accepts reservations
	isActive bool

	// isConstructed ensures the package was created via a constructor
	isConstructed bool
}

// NewPackage creates a new Package instance with validation. This is the only
// way (besides RestorePackage) to obtain a valid Package, ensuring all
// business invariants hold.
func NewPackage(
	id, businessID kernel.UUID,
	name string,
	price, originalPrice, estimatedWeight float64,
	quantityAvailable int,
	pickupStartTime, pickupEndTime time.Time,
	isActive bool,
) (*Package, error) {
	p := &Package{
		name:          name,
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setBusinessID(businessID),
		p.setPricing(price, originalPrice),
		p.setEstimatedWeight(estimatedWeight),
		p.setQuantityAvailable(quantityAvailable),
		p.setPickupWindow(pickupStartTime, pickupEndTime),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a Package from persistence. It applies the same
// validation as NewPackage; a stored row that violates the invariants is a
// data-integrity failure, not a valid aggregate.
func RestorePackage(
	id, businessID kernel.UUID,
	name string,
	price, originalPrice, estimatedWeight float64,
	quantityAvailable int,
	pickupStartTime, pickupEndTime time.Time,
	isActive bool,
) (*Package, error) {
	return NewPackage(id, businessID, name,
		price, originalPrice, estimatedWeight,
		quantityAvailable, pickupStartTime, pickupEndTime, isActive)
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// BusinessID returns the identifier of the offering business.
func (p *Package) BusinessID() kernel.UUID {
	return p.businessID
}

// Name returns the customer-facing title of the offer.
func (p *Package) Name() string {
	return p.name
}

// Price returns the discounted price per unit.
func (p *Package) Price() float64 {
	return p.price
}

// OriginalPrice returns the undiscounted price per unit.
func (p *Package) OriginalPrice() float64 {
	return p.originalPrice
}

// EstimatedWeight returns the estimated food weight per unit in kilograms.
func (p *Package) EstimatedWeight() float64 {
	return p.estimatedWeight
}

// QuantityAvailable returns the remaining stock as of the time the aggregate
// was loaded.
func (p *Package) QuantityAvailable() int {
	return p.quantityAvailable
}

// PickupStartTime returns the start of the pickup window.
func (p *Package) PickupStartTime() time.Time {
	return p.pickupStartTime
}

// PickupEndTime returns the end of the pickup window.
func (p *Package) PickupEndTime() time.Time {
	return p.pickupEndTime
}

// IsActive reports whether the listing accepts reservations.
func (p *Package) IsActive() bool {
	return p.isActive
}

// ValidateReservation checks the preconditions for reserving the given
// quantity at the given time. It does not mutate stock; the actual decrement
// happens through the repository's atomic conditional update.
//
// Failure modes:
//   - quantity < 1: value error
//   - package inactive: invalid state
//   - pickup window already started: invalid state
//
// Remaining stock is deliberately not checked here. The loaded counter may be
// stale under concurrency; only the conditional update can decide.
func (p *Package) ValidateReservation(quantity int, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if !p.isActive {
		return errs.NewInvalidStateError("package is not available")
	}

	if !now.Before(p.pickupStartTime) {
		return errs.NewInvalidStateError("pickup window already started")
	}

	return nil
}

// IsPickupWindowOver reports whether the pickup window has fully elapsed.
func (p *Package) IsPickupWindowOver(now time.Time) bool {
	return now.After(p.pickupEndTime)
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessID", err)
	}
	p.businessID = businessID
	return nil
}

func (p *Package) setPricing(price, originalPrice float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%.2f is negative", price))
	}
	if price > originalPrice {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%.2f exceeds original price %.2f", price, originalPrice))
	}
	p.price = price
	p.originalPrice = originalPrice
	return nil
}

func (p *Package) setEstimatedWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated weight is invalid",
			fmt.Errorf("%.2f is not greater than 0", weight))
	}
	p.estimatedWeight = weight
	return nil
}

func (p *Package) setQuantityAvailable(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity available is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	p.quantityAvailable = quantity
	return nil
}

func (p *Package) setPickupWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errs.NewValueIsRequiredError("pickup window")
	}
	if !end.After(start) {
		return errs.NewValueIsInvalidErrorWithCause("pickup window is invalid",
			fmt.Errorf("end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	p.pickupStartTime = start
	p.pickupEndTime = end
	return nil
}
