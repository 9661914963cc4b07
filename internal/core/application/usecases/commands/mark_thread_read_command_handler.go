package commands

import (
	"context"
)

// MarkThreadReadCommandHandler flips the read flag on the messages the
// reader has not sent themselves. Reading an empty or unknown thread is a
// no-op, not an error.
type MarkThreadReadCommandHandler struct {
	uowFactory ChatUoWFactory
}

// NewMarkThreadReadCommandHandler creates a handler for read receipts.
func NewMarkThreadReadCommandHandler(uowFactory ChatUoWFactory) MarkThreadReadCommandHandler {
	return MarkThreadReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the read receipt.
func (h MarkThreadReadCommandHandler) Handle(ctx context.Context, cmd MarkThreadReadCommand) error {
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

	if err := uow.ChatRepository().MarkThreadRead(ctx, cmd.ThreadID(), cmd.ReaderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
