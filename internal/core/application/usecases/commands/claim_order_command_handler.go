package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"
)

// ClaimOrderCommandHandler handles a driver's claim on a pending order.
// Loads both aggregates, attaches the driver to the order, marks the order as
// the driver's active delivery, and persists both within one transaction.
//
// Racing claims are resolved by optimistic locking: the order row carries a
// version, the update is conditional on it, and the losing claim's Update
// fails with a ConcurrencyConflictError, rolling back its transaction.
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationSender
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationSender,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the claim command.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	claimedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	claimingDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = claimedOrder.AssignDriver(claimingDriver.ID(), claimingDriver.Name(), time.Now()); err != nil {
		return err
	}

	if err = claimingDriver.AssignOrder(claimedOrder.ID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, claimedOrder); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, claimingDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, ports.Notification{
		Event:   "order.assigned",
		OrderID: claimedOrder.ID().String(),
		RecipientIDs: []string{
			claimedOrder.CustomerID().String(),
			claimedOrder.RestaurantID().String(),
		},
		Payload: map[string]any{
			"status":     claimedOrder.Status().String(),
			"driverName": claimedOrder.DriverName(),
		},
	})

	return nil
}
