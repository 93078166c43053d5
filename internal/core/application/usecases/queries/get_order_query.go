// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and authorize the requesting
// actor before returning anything; a denied read surfaces as an error, never
// as a silently narrowed result.
package queries

import (
	"errors"
	"time"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/order"
	"foodrescue/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order on behalf of an actor.
// Only the customer who placed the order and admins may read it.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid order query: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", resp.ID, resp.Status)
type GetOrderQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order for an actor.
func NewGetOrderQuery(orderID, actorID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order being read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the authenticated user requesting the read.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// OrderResponse represents one order as returned by the read side.
// The financial and environmental metrics are the values frozen at
// reservation time.
type OrderResponse struct {
	ID         kernel.UUID
	UserID     kernel.UUID
	PackageID  kernel.UUID
	Quantity   int
	TotalPrice float64
	MoneySaved float64
	CO2SavedKg float64
	Status     order.Status
	PickedUpBy *kernel.UUID
	CreatedAt  time.Time
}

// OrdersPage is one page of an order listing together with the pagination
// metadata the caller needs to fetch the rest.
type OrdersPage struct {
	Orders []OrderResponse
	Total  int64
	Page   int
	Limit  int
}
