package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrNoFreeDriversFound = errors.New("no free drivers found")
	ErrNoOrderFound       = errors.New("no order found")
)

// DispatchOrderCommandHandler orchestrates automatic driver assignment.
// Finds the oldest pending order and matches it with available drivers using
// the DriverDispatcher domain service. Ensures transactional consistency when
// updating both order and driver states.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(uowFactory, notifier)
//	cmd := NewDispatchOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoFreeDriversFound):
//	    log.Println("All drivers are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationSender
}

// NewDispatchOrderCommandHandler creates a handler for dispatch operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDispatchOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationSender,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dispatch command.
// Retrieves the oldest pending order, finds free drivers, and uses the
// DriverDispatcher to select the best match. Updates both aggregates within
// a single transaction. Returns specific errors for no orders
// (ErrNoOrderFound) or no drivers (ErrNoFreeDriversFound).
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	pendingOrder, err := orderRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	drivers, err := driverRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}
	if len(drivers) == 0 {
		return ErrNoFreeDriversFound
	}

	assignedDriver, err := services.NewDriverDispatcher().Dispatch(pendingOrder, drivers, time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assignedDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, ports.Notification{
		Event:   "order.assigned",
		OrderID: pendingOrder.ID().String(),
		RecipientIDs: []string{
			pendingOrder.CustomerID().String(),
			pendingOrder.RestaurantID().String(),
			assignedDriver.ID().String(),
		},
		Payload: map[string]any{
			"status":     pendingOrder.Status().String(),
			"driverName": pendingOrder.DriverName(),
		},
	})

	return nil
}
