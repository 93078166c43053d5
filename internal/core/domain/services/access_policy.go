package services

import (
	"foodrescue/internal/core/domain/model/account"
	"foodrescue/internal/pkg/errs"
)

// OrderAction enumerates the operations the access policy gates.
type OrderAction int

const (
	// UnknownAction represents an invalid or undefined action.
	UnknownAction OrderAction = iota

	// ViewOrder is reading a single order.
	ViewOrder

	// ViewBusinessOrders is listing the orders placed against a business.
	ViewBusinessOrders

	// CreateOrder is placing a new order.
	CreateOrder

	// ConfirmOrder is the Pending -> Confirmed transition.
	ConfirmOrder

	// CancelOrder is the Pending -> Cancelled transition.
	CancelOrder

	// PickUpOrder is the Confirmed -> PickedUp transition.
	PickUpOrder
)

func getActionStrings() map[OrderAction]string {
	return map[OrderAction]string{
		UnknownAction:      "unknown action",
		ViewOrder:          "view order",
		ViewBusinessOrders: "view business orders",
		CreateOrder:        "create order",
		ConfirmOrder:       "confirm order",
		CancelOrder:        "cancel order",
		PickUpOrder:        "pick up order",
	}
}

// String returns the human-readable name of the action.
func (a OrderAction) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown action"
}

// Relationship captures how an actor relates to the order and its business.
// The policy evaluates these facts together with the actor's role; a bare
// role is never enough to grant a capability.
type Relationship struct {
	// IsOrderOwner is true when the actor placed the order.
	IsOrderOwner bool

	// IsBusinessOwner is true when the actor owns the order's business.
	IsBusinessOwner bool

	// IsActiveWorker is true when the actor holds an active worker
	// membership in the order's business.
	IsActiveWorker bool
}

// capabilities is the complete capability table: one predicate per action.
// New roles or relationship rules are additions here, not edits to branching
// logic elsewhere.
var capabilities = map[OrderAction]func(account.Actor, Relationship) bool{
	ViewOrder: func(actor account.Actor, rel Relationship) bool {
		return actor.IsAdmin() || rel.IsOrderOwner
	},
	ViewBusinessOrders: func(actor account.Actor, rel Relationship) bool {
		return actor.IsAdmin() || rel.IsBusinessOwner || rel.IsActiveWorker
	},
	// Any authenticated account may place an order. The capability still
	// runs through the table so future restrictions land here instead of
	// as a branch in the create handler.
	CreateOrder: func(account.Actor, Relationship) bool {
		return true
	},
	// Confirmation is deliberately broad: anyone related to the order may
	// acknowledge it. Preserved as observed behavior of the marketplace.
	ConfirmOrder: func(actor account.Actor, rel Relationship) bool {
		return actor.IsAdmin() || rel.IsOrderOwner || rel.IsBusinessOwner || rel.IsActiveWorker
	},
	CancelOrder: func(actor account.Actor, rel Relationship) bool {
		return actor.IsAdmin() || rel.IsOrderOwner
	},
	// Pickup requires the worker capability for this business; even admins
	// cannot hand a package over.
	PickUpOrder: func(_ account.Actor, rel Relationship) bool {
		return rel.IsActiveWorker
	},
}

// AccessPolicy decides whether an actor may perform an action on a specific
// order, given their role and relationship to the target. Check failures
// always surface as ForbiddenError, never as silently narrowed results.
type AccessPolicy struct{}

// NewAccessPolicy creates the access policy domain service.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize evaluates the capability table for (actor, relationship, action).
// Returns nil when the action is permitted and a ForbiddenError otherwise.
func (p AccessPolicy) Authorize(actor account.Actor, rel Relationship, action OrderAction) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	allowed, ok := capabilities[action]
	if !ok {
		return errs.NewForbiddenError(actor.ID().String(), action.String())
	}

	if !allowed(actor, rel) {
		return errs.NewForbiddenError(actor.ID().String(), action.String())
	}

	return nil
}
