package commands

import (
	"context"
	"time"
)

// ExpirePendingOrdersCommandHandler cancels pending orders whose package
// pickup window has already ended. Customers can no longer collect these
// reservations, so holding their stock only blocks other buyers.
//
// Example:
//
//	handler := NewExpirePendingOrdersCommandHandler(uowFactory)
//	cmd := NewExpirePendingOrdersCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("expiry sweep failed: %w", err)
//	}
//	// This would typically be called periodically by a scheduler
type ExpirePendingOrdersCommandHandler struct {
	uowFactory ExpiryUoWFactory
}

// NewExpirePendingOrdersCommandHandler creates a handler for the expiry sweep.
// Requires an ExpiryUoWFactory for coordinating order and package updates.
func NewExpirePendingOrdersCommandHandler(uowFactory ExpiryUoWFactory) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry command.
// Retrieves all pending orders past their pickup window, cancels each one,
// and releases its reserved stock. All updates occur within a single
// transaction; a failed sweep leaves every reservation untouched.
func (h *ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) error {
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

	orderRepo := uow.OrderRepository()
	packageRepo := uow.PackageRepository()

	orders, err := orderRepo.GetAllPendingWithPickupOver(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, o := range orders {
		if err = o.Cancel(); err != nil {
			return err
		}

		if err = packageRepo.ReleaseStock(ctx, o.PackageID(), o.Quantity()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
