package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"
)

// CancelOrderCommandHandler terminates a non-terminal order. When a driver
// was already attached, their active-order pointer is cleared so they return
// to the free pool. Everyone involved is notified.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationSender
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationSender,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command. The aggregate rejects actors
// other than admins and the owning restaurant, and refuses to cancel
// delivered or already cancelled orders.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignedDriverID := cancelledOrder.Driver()

	if err = cancelledOrder.Cancel(cmd.ActorID(), cmd.ActorRole(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	recipients := []string{
		cancelledOrder.CustomerID().String(),
		cancelledOrder.RestaurantID().String(),
	}

	if assignedDriverID != nil {
		driverRepo := uow.DriverRepository()

		assignedDriver, err := driverRepo.Get(ctx, *assignedDriverID)
		if err != nil {
			return err
		}

		if err = assignedDriver.CompleteOrder(cancelledOrder.ID()); err != nil {
			return err
		}

		if err = driverRepo.Update(ctx, assignedDriver); err != nil {
			return err
		}

		recipients = append(recipients, assignedDriver.ID().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, ports.Notification{
		Event:        "order.cancelled",
		OrderID:      cancelledOrder.ID().String(),
		RecipientIDs: recipients,
		Payload: map[string]any{
			"status": cancelledOrder.Status().String(),
		},
	})

	return nil
}
