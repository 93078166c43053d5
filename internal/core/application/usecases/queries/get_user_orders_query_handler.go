package queries

import (
	"context"

	"foodrescue/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler lists a customer's orders from the database.
type GetUserOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetUserOrdersQueryHandler creates a handler for per-customer order listings.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the query. The listing is owned by the customer it
// describes, so the owner capability applies: the actor must be that
// customer or an admin. Results are sorted newest first and paginated;
// Total counts all of the customer's orders, not just the returned page.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) (OrdersPage, error) {
	if err := query.Validate(); err != nil {
		return OrdersPage{}, err
	}

	actor, err := getActor(ctx, h.db, query.ActorID())
	if err != nil {
		return OrdersPage{}, err
	}

	rel := services.Relationship{
		IsOrderOwner: query.UserID().IsEqual(query.ActorID()),
	}
	if err = h.policy.Authorize(actor, rel, services.ViewOrder); err != nil {
		return OrdersPage{}, err
	}

	var total int64
	err = h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM orders WHERE user_id = ?
	`, query.UserID().Bytes()).Scan(&total).Error
	if err != nil {
		return OrdersPage{}, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			package_id,
			quantity,
			total_price,
			money_saved,
			co2_saved_kg,
			status,
			picked_up_by,
			created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.UserID().Bytes(), query.Limit(), (query.Page()-1)*query.Limit()).Rows()
	if err != nil {
		return OrdersPage{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var row orderRow
		if err = h.db.ScanRows(rows, &row); err != nil {
			return OrdersPage{}, err
		}

		resp, respErr := toOrderResponse(row)
		if respErr != nil {
			return OrdersPage{}, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return OrdersPage{}, err
	}

	return OrdersPage{
		Orders: orders,
		Total:  total,
		Page:   query.Page(),
		Limit:  query.Limit(),
	}, nil
}
