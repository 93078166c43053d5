package queries

import (
	"context"

	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/order"
	"foodrescue/internal/core/domain/services"
	"foodrescue/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBusinessOrdersQueryHandler lists the orders placed against a business.
type GetBusinessOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetBusinessOrdersQueryHandler creates a handler for per-business order listings.
// Requires a GORM database connection for query execution.
func NewGetBusinessOrdersQueryHandler(db *gorm.DB) GetBusinessOrdersQueryHandler {
	return GetBusinessOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the query.
// Workers who are neither the owner nor an admin get the confirmed orders
// only. Results are sorted newest first and paginated; Total respects the
// same visibility narrowing as the page itself.
func (h GetBusinessOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBusinessOrdersQuery,
) (OrdersPage, error) {
	if err := query.Validate(); err != nil {
		return OrdersPage{}, err
	}

	actor, err := getActor(ctx, h.db, query.ActorID())
	if err != nil {
		return OrdersPage{}, err
	}

	var ownerID uuid.UUID
	result := h.db.WithContext(ctx).Raw(`
		SELECT owner_id FROM businesses WHERE id = ?
	`, query.BusinessID().Bytes()).Scan(&ownerID)
	if result.Error != nil {
		return OrdersPage{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrdersPage{}, errs.NewObjectNotFoundError("business", query.BusinessID().String())
	}

	var workerCount int64
	err = h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM business_workers
		WHERE user_id = ? AND business_id = ? AND is_active
	`, query.ActorID().Bytes(), query.BusinessID().Bytes()).Scan(&workerCount).Error
	if err != nil {
		return OrdersPage{}, err
	}

	businessOwnerID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return OrdersPage{}, err
	}

	rel := services.Relationship{
		IsBusinessOwner: businessOwnerID.IsEqual(query.ActorID()),
		IsActiveWorker:  workerCount > 0,
	}
	if err = h.policy.Authorize(actor, rel, services.ViewBusinessOrders); err != nil {
		return OrdersPage{}, err
	}

	// Workers only handle pickups, so their view narrows to confirmed orders.
	confirmedOnly := !actor.IsAdmin() && !rel.IsBusinessOwner

	where := `
		FROM orders
		JOIN packages ON packages.id = orders.package_id
		WHERE packages.business_id = ?`
	args := []any{query.BusinessID().Bytes()}
	if confirmedOnly {
		where += ` AND orders.status = ?`
		args = append(args, int(order.Confirmed))
	}

	var total int64
	err = h.db.WithContext(ctx).Raw(`SELECT count(*)`+where, args...).Scan(&total).Error
	if err != nil {
		return OrdersPage{}, err
	}

	sql := `
		SELECT
			orders.id,
			orders.user_id,
			orders.package_id,
			orders.quantity,
			orders.total_price,
			orders.money_saved,
			orders.co2_saved_kg,
			orders.status,
			orders.picked_up_by,
			orders.created_at` + where + `
		ORDER BY orders.created_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), (query.Page()-1)*query.Limit())

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
