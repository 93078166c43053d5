package commands

import (
	"context"
	"time"

	"foodrescue/internal/core/domain/model/order"
	"foodrescue/internal/core/domain/services"
	"foodrescue/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Authorizes the buyer, validates the reservation preconditions, reserves
// stock atomically, derives the pricing snapshot, and persists the order in
// "pending" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), userID, packageID, 2)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Stock is reserved and the order awaits confirmation
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	pricing    services.PricingCalculator
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPricingCalculator(),
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order creation command.
//
// The stock decrement and the order insert run in one transaction. The
// decrement itself is a conditional update inside the package repository, so
// two concurrent requests for the last units cannot both succeed; the loser
// receives an InsufficientStockError and nothing is persisted for it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().GetActor(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = h.policy.Authorize(actor, services.Relationship{}, services.CreateOrder); err != nil {
		return err
	}

	packageRepo := uow.PackageRepository()
	pkg, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if err = pkg.ValidateReservation(cmd.Quantity(), time.Now()); err != nil {
		return err
	}

	business, err := uow.BusinessRepository().Get(ctx, pkg.BusinessID())
	if err != nil {
		return err
	}

	if !business.IsVerified() {
		return errs.NewInvalidStateError("business is not verified")
	}

	if err = packageRepo.ReserveStock(ctx, pkg.ID(), cmd.Quantity()); err != nil {
		return err
	}

	pricing, err := h.pricing.Calculate(pkg, cmd.Quantity())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), cmd.PackageID(), cmd.Quantity(),
		pricing.TotalPrice, pricing.MoneySaved, pricing.CO2SavedKg,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
