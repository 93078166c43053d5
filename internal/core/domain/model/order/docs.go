// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is a customer's reservation of some quantity of a package. It is
// created in Pending status with its financial and environmental metrics
// computed once; afterwards only the status (and the pickup worker stamp) may
// change, along the explicit transition table in status.go:
//
//	Pending ──> Confirmed ──> PickedUp
//	   │
//	   └──────> Cancelled
//
// PickedUp and Cancelled are terminal. Cancelling releases the reserved stock
// back to the package; that side effect is orchestrated by the application
// layer, not by the aggregate.
package order
