package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/ports"
)

// SendMessageCommandHandler appends a message to a thread's log and pushes a
// notification so the other participant sees it without polling.
type SendMessageCommandHandler struct {
	uowFactory ChatUoWFactory
	notifier   ports.NotificationSender
}

// NewSendMessageCommandHandler creates a handler for message sending.
func NewSendMessageCommandHandler(
	uowFactory ChatUoWFactory,
	notifier ports.NotificationSender,
) SendMessageCommandHandler {
	return SendMessageCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the send command. Re-sending a message the log already
// contains commits without a second row and without a second notification.
func (h SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	message, err := chat.NewMessage(
		cmd.MessageID(),
		cmd.ThreadID(),
		cmd.SenderID(),
		cmd.SenderName(),
		cmd.SenderRole(),
		cmd.Body(),
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

	inserted, err := uow.ChatRepository().Add(ctx, message)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !inserted {
		return nil
	}

	_ = h.notifier.Send(ctx, ports.Notification{
		Event: "chat.message",
		Payload: map[string]any{
			"threadId":   message.ThreadID().String(),
			"messageId":  message.ID().String(),
			"senderName": message.SenderName(),
		},
	})

	return nil
}
