package queries

import (
	"errors"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/pkg/guard"
)

var ErrGetBusinessOrdersQueryIsNotConstructed = errors.New(
	"GetBusinessOrdersQuery must be created via NewGetBusinessOrdersQuery constructor",
)

// GetBusinessOrdersQuery retrieves one page of the orders placed against a
// business, newest first. Owners and admins see everything; active workers
// see only confirmed orders, the ones they can actually hand over.
//
// Example:
//
//	query, err := NewGetBusinessOrdersQuery(businessID, actorID, 1, queries.DefaultPageLimit)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetBusinessOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list business orders: %w", err)
//	}
type GetBusinessOrdersQuery struct {
	businessID kernel.UUID
	actorID    kernel.UUID
	page       int
	limit      int

	guard guard.ConstructorGuard
}

// NewGetBusinessOrdersQuery creates a query listing page (1-based) of the
// orders of businessID on behalf of actorID, at limit orders per page.
func NewGetBusinessOrdersQuery(
	businessID, actorID kernel.UUID,
	page, limit int,
) (GetBusinessOrdersQuery, error) {
	if err := businessID.Validate(); err != nil {
		return GetBusinessOrdersQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return GetBusinessOrdersQuery{}, err
	}
	if err := validatePagination(page, limit); err != nil {
		return GetBusinessOrdersQuery{}, err
	}

	return GetBusinessOrdersQuery{
		businessID: businessID,
		actorID:    actorID,
		page:       page,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBusinessOrdersQueryIsNotConstructed if validation fails.
func (q GetBusinessOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessOrdersQueryIsNotConstructed)
}

// BusinessID returns the business whose orders are listed.
func (q GetBusinessOrdersQuery) BusinessID() kernel.UUID {
	return q.businessID
}

// ActorID returns the authenticated user requesting the listing.
func (q GetBusinessOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Page returns the 1-based page being requested.
func (q GetBusinessOrdersQuery) Page() int {
	return q.page
}

// Limit returns the number of orders per page.
func (q GetBusinessOrdersQuery) Limit() int {
	return q.limit
}
