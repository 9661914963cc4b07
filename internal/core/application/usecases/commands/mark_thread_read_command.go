package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkThreadReadCommandIsNotConstructed = errors.New(
	"MarkThreadReadCommand must be created via NewMarkThreadReadCommand constructor",
)

// MarkThreadReadCommand represents a participant opening a thread, which
// marks everything the other side sent as read.
type MarkThreadReadCommand struct { //nolint:recvcheck //using for validation
	threadID chat.ThreadID
	readerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkThreadReadCommand creates a command to mark a thread as read.
func NewMarkThreadReadCommand(threadID chat.ThreadID, readerID kernel.UUID) (MarkThreadReadCommand, error) {
	cmd := MarkThreadReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setThreadID(threadID),
		cmd.setReaderID(readerID),
	); err != nil {
		return MarkThreadReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkThreadReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkThreadReadCommandIsNotConstructed)
}

// ThreadID returns the thread being read.
func (c MarkThreadReadCommand) ThreadID() chat.ThreadID { return c.threadID }

// ReaderID returns the reading participant.
func (c MarkThreadReadCommand) ReaderID() kernel.UUID { return c.readerID }

func (c *MarkThreadReadCommand) setThreadID(threadID chat.ThreadID) error {
	if err := threadID.Validate(); err != nil {
		return err
	}

	c.threadID = threadID
	return nil
}

func (c *MarkThreadReadCommand) setReaderID(readerID kernel.UUID) error {
	if err := readerID.Validate(); err != nil {
		return err
	}

	c.readerID = readerID
	return nil
}
