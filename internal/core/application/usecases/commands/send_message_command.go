package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSendMessageCommandIsNotConstructed = errors.New(
	"SendMessageCommand must be created via NewSendMessageCommand constructor",
)

// SendMessageCommand represents appending a message to a chat thread. The
// message id comes from the client, so a retried send carries the same id and
// lands as a no-op instead of a duplicate.
type SendMessageCommand struct { //nolint:recvcheck //using for validation
	messageID  kernel.UUID
	threadID   chat.ThreadID
	senderID   kernel.UUID
	senderName string
	senderRole kernel.Role
	body       string

	guard guard.ConstructorGuard
}

// NewSendMessageCommand creates a command to append a chat message. Body and
// sender-name requirements are enforced by the Message aggregate.
func NewSendMessageCommand(
	messageID kernel.UUID,
	threadID chat.ThreadID,
	senderID kernel.UUID,
	senderName string,
	senderRole kernel.Role,
	body string,
) (SendMessageCommand, error) {
	cmd := SendMessageCommand{
		senderName: senderName,
		body:       body,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMessageID(messageID),
		cmd.setThreadID(threadID),
		cmd.setSender(senderID, senderRole),
	); err != nil {
		return SendMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

// MessageID returns the client-generated message identifier.
func (c SendMessageCommand) MessageID() kernel.UUID { return c.messageID }

// ThreadID returns the target thread.
func (c SendMessageCommand) ThreadID() chat.ThreadID { return c.threadID }

// SenderID returns the sending user.
func (c SendMessageCommand) SenderID() kernel.UUID { return c.senderID }

// SenderName returns the sender's display name.
func (c SendMessageCommand) SenderName() string { return c.senderName }

// SenderRole returns which surface the sender belongs to.
func (c SendMessageCommand) SenderRole() kernel.Role { return c.senderRole }

// Body returns the message text.
func (c SendMessageCommand) Body() string { return c.body }

func (c *SendMessageCommand) setMessageID(messageID kernel.UUID) error {
	if err := messageID.Validate(); err != nil {
		return err
	}

	c.messageID = messageID
	return nil
}

func (c *SendMessageCommand) setThreadID(threadID chat.ThreadID) error {
	if err := threadID.Validate(); err != nil {
		return err
	}

	c.threadID = threadID
	return nil
}

func (c *SendMessageCommand) setSender(senderID kernel.UUID, senderRole kernel.Role) error {
	if err := errors.Join(senderID.Validate(), senderRole.Validate()); err != nil {
		return err
	}

	c.senderID = senderID
	c.senderRole = senderRole
	return nil
}
