package order

import (
	"errors"
	"fmt"
	"time"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer's reservation of a surplus-food package. It is
// the aggregate root that manages the order lifecycle from creation through
// confirmation to pickup or cancellation.
//
// Order follows these invariants:
//   - Must have valid order, user, and package identifiers
//   - Quantity is at least 1
//   - money_saved is never negative
//   - Status transitions follow the table in status.go with no skips
//   - The pickup worker stamp is set exactly when the order is picked up
//
// Every field except the status and the pickup worker stamp is immutable
// after creation: the financial and environmental metrics are frozen at
// reservation time even if the package's own pricing later changes.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the customer who placed the order
	userID kernel.UUID

	// packageID references the reserved package
	packageID kernel.UUID

	// quantity is the number of units reserved (at least 1)
	quantity int

	// totalPrice, moneySaved, and co2SavedKg are computed once at creation
	totalPrice float64
	moneySaved float64
	co2SavedKg float64

	// status is the current state in the order lifecycle
	status Status

	// pickedUpBy is the worker who handled the pickup (nil until picked up)
	pickedUpBy *kernel.UUID

	// createdAt is the placement time; listings sort newest-first by it
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way (besides RestoreOrder) to create a valid Order.
//
// The price, savings, and CO2 figures come from the pricing calculator; the
// constructor only enforces that they are internally consistent (non-negative
// savings, positive quantity).
func NewOrder(
	id, userID, packageID kernel.UUID,
	quantity int,
	totalPrice, moneySaved, co2SavedKg float64,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setPackageID(packageID),
		o.setQuantity(quantity),
		o.setMetrics(totalPrice, moneySaved, co2SavedKg),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status
// and pickup worker. Used by repositories when mapping rows back to the
// domain; applies full validation including status/worker consistency.
func RestoreOrder(
	id, userID, packageID kernel.UUID,
	quantity int,
	totalPrice, moneySaved, co2SavedKg float64,
	createdAt time.Time,
	status Status,
	pickedUpBy *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, userID, packageID, quantity, totalPrice, moneySaved, co2SavedKg)
	if err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHavePickupWorker(pickedUpBy != nil); err != nil {
		return nil, err
	}
	if pickedUpBy != nil {
		if err = pickedUpBy.Validate(); err != nil {
			return nil, err
		}
	}

	o.createdAt = createdAt
	o.status = status
	o.pickedUpBy = pickedUpBy
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call when reconstructing orders from persistence to ensure
// data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the customer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// PackageID returns the reserved package's identifier.
func (o *Order) PackageID() kernel.UUID {
	return o.packageID
}

// Quantity returns the number of units reserved.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalPrice returns the total discounted price paid for the order.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// MoneySaved returns the savings versus the original price.
func (o *Order) MoneySaved() float64 {
	return o.moneySaved
}

// CO2SavedKg returns the estimated avoided emissions in kilograms.
func (o *Order) CO2SavedKg() float64 {
	return o.co2SavedKg
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PickedUpBy returns the worker who handled the pickup.
// Returns nil if the order has not been picked up.
func (o *Order) PickedUpBy() *kernel.UUID {
	return o.pickedUpBy
}

// CreatedAt returns the time the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the given user placed this order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// Confirm transitions the order from Pending to Confirmed.
// Returns an InvalidTransitionError for any other current status.
func (o *Order) Confirm() error {
	if err := o.status.CanTransitionTo(Confirmed); err != nil {
		return err
	}

	o.status = Confirmed
	return nil
}

// Cancel transitions the order from Pending to Cancelled.
//
// Cancelled is terminal. The reserved stock must be released by the caller in
// the same transaction; the aggregate records only the state change.
func (o *Order) Cancel() error {
	if err := o.status.CanTransitionTo(Cancelled); err != nil {
		return err
	}

	o.status = Cancelled
	return nil
}

// MarkPickedUp transitions the order from Confirmed to PickedUp and stamps
// the worker who handled the pickup.
//
// This method enforces the transition table only; the access policy decides
// whether the worker is allowed to act on this order's business.
func (o *Order) MarkPickedUp(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	if err := o.status.CanTransitionTo(PickedUp); err != nil {
		return err
	}

	o.status = PickedUp
	o.pickedUpBy = &workerID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("packageID", err)
	}
	o.packageID = packageID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setMetrics(totalPrice, moneySaved, co2SavedKg float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid",
			fmt.Errorf("%.2f is negative", totalPrice))
	}
	if moneySaved < 0 {
		return errs.NewValueIsInvalidErrorWithCause("money saved is invalid",
			fmt.Errorf("%.2f is negative", moneySaved))
	}
	if co2SavedKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("co2 saved is invalid",
			fmt.Errorf("%.2f is negative", co2SavedKg))
	}
	o.totalPrice = totalPrice
	o.moneySaved = moneySaved
	o.co2SavedKg = co2SavedKg
	return nil
}
