package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Creates the order in Pending status, where it sits in the unassigned pool
// until a driver claims it or the dispatch job assigns one.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSender
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a
// NotificationSender for the post-commit lifecycle event.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSender,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
// Builds the aggregate, which computes the totals from the items and fees,
// persists it, and notifies the restaurant after the transaction commits.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.RestaurantID(),
		cmd.CustomerID(),
		cmd.Items(),
		cmd.DeliveryFee(),
		cmd.Tip(),
		cmd.Option(),
		cmd.Address(),
		cmd.PaymentMethod(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, ports.Notification{
		Event:        "order.placed",
		OrderID:      newOrder.ID().String(),
		RecipientIDs: []string{newOrder.RestaurantID().String()},
		Payload: map[string]any{
			"status": newOrder.Status().String(),
			"total":  newOrder.Total().String(),
		},
	})

	return nil
}
