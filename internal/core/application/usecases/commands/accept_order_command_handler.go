package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"
)

// AcceptOrderCommandHandler records the assigned driver's confirmation.
// Only touches the order aggregate; the driver keeps the order as their
// active delivery throughout.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSender
}

// NewAcceptOrderCommandHandler creates a handler for acceptance operations.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSender,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command. The aggregate enforces that the
// actor is the assigned driver and that the order is awaiting acceptance.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	acceptedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = acceptedOrder.Accept(cmd.ActorID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, acceptedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, ports.Notification{
		Event:   "order.accepted",
		OrderID: acceptedOrder.ID().String(),
		RecipientIDs: []string{
			acceptedOrder.CustomerID().String(),
			acceptedOrder.RestaurantID().String(),
		},
		Payload: map[string]any{
			"status":     acceptedOrder.Status().String(),
			"driverName": acceptedOrder.DriverName(),
		},
	})

	return nil
}
