package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"
)

// DeliverOrderCommandHandler completes a delivery. Marks the order Delivered,
// frees the driver for new assignments, and persists both aggregates in one
// transaction. Delivered is terminal and makes the order eligible for rating.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationSender
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
func NewDeliverOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationSender,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	deliveredOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = deliveredOrder.Deliver(cmd.ActorID(), time.Now()); err != nil {
		return err
	}

	assignedDriver, err := driverRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	if err = assignedDriver.CompleteOrder(deliveredOrder.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, deliveredOrder); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assignedDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, ports.Notification{
		Event:   "order.delivered",
		OrderID: deliveredOrder.ID().String(),
		RecipientIDs: []string{
			deliveredOrder.CustomerID().String(),
			deliveredOrder.RestaurantID().String(),
		},
		Payload: map[string]any{
			"status": deliveredOrder.Status().String(),
		},
	})

	return nil
}
