package queries

import (
	"context"
	"time"

	"foodrescue/internal/core/domain/model/account"
	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/order"
	"foodrescue/internal/core/domain/services"
	"foodrescue/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRow is the scan target for order rows on the read side.
type orderRow struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PackageID  uuid.UUID
	Quantity   int
	TotalPrice float64
	MoneySaved float64
	CO2SavedKg float64 `gorm:"column:co2_saved_kg"`
	Status     int
	PickedUpBy *uuid.UUID
	CreatedAt  time.Time
}

func toOrderResponse(row orderRow) (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(row.UserID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	packageID, err := kernel.UUIDFromBytes(row.PackageID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	var pickedUpBy *kernel.UUID
	if row.PickedUpBy != nil {
		wID, workerErr := kernel.UUIDFromBytes((*row.PickedUpBy)[:])
		if workerErr != nil {
			return OrderResponse{}, workerErr
		}
		pickedUpBy = &wID
	}

	return OrderResponse{
		ID:         id,
		UserID:     userID,
		PackageID:  packageID,
		Quantity:   row.Quantity,
		TotalPrice: row.TotalPrice,
		MoneySaved: row.MoneySaved,
		CO2SavedKg: row.CO2SavedKg,
		Status:     order.Status(row.Status),
		PickedUpBy: pickedUpBy,
		CreatedAt:  row.CreatedAt,
	}, nil
}

// getActor resolves the actor's role from the users table.
func getActor(ctx context.Context, db *gorm.DB, id kernel.UUID) (account.Actor, error) {
	var role int
	result := db.WithContext(ctx).Raw(`
		SELECT role FROM users WHERE id = ?
	`, id.Bytes()).Scan(&role)
	if result.Error != nil {
		return account.Actor{}, result.Error
	}
	if result.RowsAffected == 0 {
		return account.Actor{}, errs.NewObjectNotFoundError("user", id.String())
	}

	return account.NewActor(id, account.Role(role))
}

// GetOrderQueryHandler retrieves one order from the database after checking
// that the actor may see it.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the order does not exist and a
// ForbiddenError when the actor is neither the order's customer nor an admin.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	actor, err := getActor(ctx, h.db, query.ActorID())
	if err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	result := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row)
	if result.Error != nil {
		return OrderResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	resp, err := toOrderResponse(row)
	if err != nil {
		return OrderResponse{}, err
	}

	rel := services.Relationship{
		IsOrderOwner: resp.UserID.IsEqual(query.ActorID()),
	}
	if err = h.policy.Authorize(actor, rel, services.ViewOrder); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
