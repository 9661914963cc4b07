package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"
)

// RejectAssignmentCommandHandler returns a declined order to the unassigned
// pool. The order loses its driver and becomes Pending again; the driver is
// freed and their rejection counter grows, which deprioritizes them in
// automatic dispatch.
type RejectAssignmentCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationSender
}

// NewRejectAssignmentCommandHandler creates a handler for assignment rejection.
func NewRejectAssignmentCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationSender,
) RejectAssignmentCommandHandler {
	return RejectAssignmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the rejection command.
func (h RejectAssignmentCommandHandler) Handle(ctx context.Context, cmd RejectAssignmentCommand) error {
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
	driverRepo := uow.DriverRepository()

	rejectedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = rejectedOrder.Reject(cmd.ActorID(), time.Now()); err != nil {
		return err
	}

	decliningDriver, err := driverRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	if err = decliningDriver.RejectOrder(rejectedOrder.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, rejectedOrder); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, decliningDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, ports.Notification{
		Event:        "order.rejected",
		OrderID:      rejectedOrder.ID().String(),
		RecipientIDs: []string{rejectedOrder.RestaurantID().String()},
		Payload: map[string]any{
			"status": rejectedOrder.Status().String(),
		},
	})

	return nil
}
