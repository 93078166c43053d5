package queries

import (
	"errors"
	"fmt"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/pkg/errs"
	"foodrescue/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

const (
	// DefaultPageLimit is the page size applied when the caller does not
	// choose one.
	DefaultPageLimit = 10

	// MaxPageLimit caps how many orders a single page may return.
	MaxPageLimit = 100
)

// validatePagination checks the shared page/limit rules of the listing queries.
func validatePagination(page, limit int) error {
	if page < 1 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is not greater than 0", page))
	}
	if limit < 1 || limit > MaxPageLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	return nil
}

// GetUserOrdersQuery retrieves one page of a customer's order history,
// newest first. Customers may list their own history; admins may list
// anyone's.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery(userID, actorID, 1, queries.DefaultPageLimit)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetUserOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d of %d orders\n", len(page.Orders), page.Total)
type GetUserOrdersQuery struct {
	userID  kernel.UUID
	actorID kernel.UUID
	page    int
	limit   int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query listing page (1-based) of the orders
// of userID on behalf of actorID, at limit orders per page.
func NewGetUserOrdersQuery(userID, actorID kernel.UUID, page, limit int) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	if err := validatePagination(page, limit); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID:  userID,
		actorID: actorID,
		page:    page,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the customer whose orders are listed.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// ActorID returns the authenticated user requesting the listing.
func (q GetUserOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Page returns the 1-based page being requested.
func (q GetUserOrdersQuery) Page() int {
	return q.page
}

// Limit returns the number of orders per page.
func (q GetUserOrdersQuery) Limit() int {
	return q.limit
}
