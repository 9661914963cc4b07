package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"
)

// PickupOrderCommandHandler records that the driver collected the order.
// The customer is notified so they can start tracking the delivery leg.
type PickupOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSender
}

// NewPickupOrderCommandHandler creates a handler for pickup operations.
func NewPickupOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSender,
) PickupOrderCommandHandler {
	return PickupOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the pickup command.
func (h PickupOrderCommandHandler) Handle(ctx context.Context, cmd PickupOrderCommand) error {
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

	pickedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = pickedOrder.PickUp(cmd.ActorID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, pickedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, ports.Notification{
		Event:        "order.picked_up",
		OrderID:      pickedOrder.ID().String(),
		RecipientIDs: []string{pickedOrder.CustomerID().String()},
		Payload: map[string]any{
			"status":     pickedOrder.Status().String(),
			"driverName": pickedOrder.DriverName(),
		},
	})

	return nil
}
