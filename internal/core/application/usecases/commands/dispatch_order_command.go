package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand triggers automatic assignment of a pending order to
// the best free driver. It finds the oldest order still in the pool and
// matches it against the drivers currently on shift with no active delivery.
//
// Example:
//
//	cmd := NewDispatchOrderCommand()
//	handler := NewDispatchOrderCommandHandler(uowFactory, notifier)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to dispatch or no free drivers: %v", err)
//	}
type DispatchOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a new command to trigger order dispatch.
// This is a parameterless command that initiates the driver-order matching process.
func NewDispatchOrderCommand() DispatchOrderCommand {
	return DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrderCommandIsNotConstructed if validation fails.
func (c *DispatchOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchOrderCommandIsNotConstructed,
	)
}
