package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents an admin or the owning restaurant cancelling
// a non-terminal order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole kernel.Role

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order on behalf of the
// given actor. Authorization is enforced by the aggregate, not here: the
// command only checks that the identifiers and role are well formed.
func NewCancelOrderCommand(orderID, actorID kernel.UUID, actorRole kernel.Role) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the cancelling user.
func (c CancelOrderCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the cancelling user's role.
func (c CancelOrderCommand) ActorRole() kernel.Role { return c.actorRole }

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActor(actorID kernel.UUID, actorRole kernel.Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
