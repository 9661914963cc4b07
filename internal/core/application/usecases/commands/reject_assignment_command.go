package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRejectAssignmentCommandIsNotConstructed = errors.New(
	"RejectAssignmentCommand must be created via NewRejectAssignmentCommand constructor",
)

// RejectAssignmentCommand represents the assigned driver declining an
// assignment before accepting it. The order returns to the shared pool where
// any other free driver can claim it.
type RejectAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectAssignmentCommand creates a command for the assigned driver to
// decline the assignment.
func NewRejectAssignmentCommand(orderID, actorID kernel.UUID) (RejectAssignmentCommand, error) {
	cmd := RejectAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return RejectAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectAssignmentCommandIsNotConstructed)
}

// OrderID returns the order whose assignment is declined.
func (c RejectAssignmentCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the declining driver.
func (c RejectAssignmentCommand) ActorID() kernel.UUID { return c.actorID }

func (c *RejectAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectAssignmentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
