package commands

import (
	"context"

	"foodrescue/internal/core/domain/model/order"
	"foodrescue/internal/core/domain/services"
	"foodrescue/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler orchestrates order status transitions.
// Resolves the actor's role and relationship to the order, authorizes the
// requested action, applies the transition on the aggregate, and releases
// reserved stock when the transition is a cancellation.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, actorID, order.Cancelled)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
//	// The order is cancelled and its units are back on sale
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderStatusUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transition
// operations. Requires an OrderStatusUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderStatusUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the status transition command.
//
// Authorization runs before the transition check so a forbidden actor learns
// nothing about the order's current status. A cancellation releases the
// reserved stock in the same transaction as the status change.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	action, ok := actionForStatus(cmd.TargetStatus())
	if !ok {
		return errs.NewInvalidTransitionError(o.Status().String(), cmd.TargetStatus().String())
	}

	pkg, err := uow.PackageRepository().Get(ctx, o.PackageID())
	if err != nil {
		return err
	}

	business, err := uow.BusinessRepository().Get(ctx, pkg.BusinessID())
	if err != nil {
		return err
	}

	actor, err := uow.UserRepository().GetActor(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	isWorker, err := uow.WorkerRepository().IsActiveWorker(ctx, cmd.ActorID(), pkg.BusinessID())
	if err != nil {
		return err
	}

	rel := services.Relationship{
		IsOrderOwner:    o.IsOwnedBy(cmd.ActorID()),
		IsBusinessOwner: business.IsOwnedBy(cmd.ActorID()),
		IsActiveWorker:  isWorker,
	}

	if err = h.policy.Authorize(actor, rel, action); err != nil {
		return err
	}

	if err = h.applyTransition(ctx, uow, o, cmd); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// applyTransition mutates the aggregate for the requested target status and
// performs the transition's side effects within the unit of work.
func (h *UpdateOrderStatusCommandHandler) applyTransition(
	ctx context.Context,
	uow OrderStatusUoW,
	o *order.Order,
	cmd UpdateOrderStatusCommand,
) error {
	switch cmd.TargetStatus() {
	case order.Confirmed:
		return o.Confirm()

	case order.Cancelled:
		if err := o.Cancel(); err != nil {
			return err
		}
		return uow.PackageRepository().ReleaseStock(ctx, o.PackageID(), o.Quantity())

	case order.PickedUp:
		return o.MarkPickedUp(cmd.ActorID())

	default:
		return errs.NewInvalidTransitionError(o.Status().String(), cmd.TargetStatus().String())
	}
}

// actionForStatus maps a target status to the capability it requires.
// Pending is not a reachable target; orders only start there.
func actionForStatus(target order.Status) (services.OrderAction, bool) {
	switch target {
	case order.Confirmed:
		return services.ConfirmOrder, true
	case order.Cancelled:
		return services.CancelOrder, true
	case order.PickedUp:
		return services.PickUpOrder, true
	default:
		return services.UnknownAction, false
	}
}
