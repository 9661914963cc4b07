package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderThread(t *testing.T) chat.ThreadID {
	t.Helper()

	threadID, err := chat.ThreadForOrder(kernel.NewUUID(), chat.ChannelCustomerDriver)
	require.NoError(t, err)
	return threadID
}

func TestSendMessageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	threadID := orderThread(t)
	messageID := kernel.NewUUID()

	cmd, err := commands.NewSendMessageCommand(
		messageID, threadID, kernel.NewUUID(), "Dana", kernel.RoleDriver, "On my way",
	)
	require.NoError(t, err)

	var persisted *chat.Message

	chatRepo := new(MockChatRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ChatRepository").Return(chatRepo).Once(),
		chatRepo.On("Add", ctx, mock.AnythingOfType("*chat.Message")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*chat.Message)
			}).
			Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockChatUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSender)
	notifier.On("Send", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Event == "chat.message" && n.Payload["messageId"] == messageID.String()
	})).Return(nil).Once()

	handler := commands.NewSendMessageCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, threadID, persisted.ThreadID())
	assert.Equal(t, "On my way", persisted.Body())
	assert.False(t, persisted.IsRead())
	notifier.AssertExpectations(t)
}

func TestSendMessageCommandHandler_Handle_EmptyBodyRejected(t *testing.T) {
	// the command lets the empty body through; the aggregate rejects it
	cmd, err := commands.NewSendMessageCommand(
		kernel.NewUUID(), orderThread(t), kernel.NewUUID(), "Dana", kernel.RoleDriver, "",
	)
	require.NoError(t, err)

	factory := new(MockChatUoWFactory)

	handler := commands.NewSendMessageCommandHandler(factory, silentNotifier())
	err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, chat.ErrBodyIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestMarkThreadReadCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	threadID := orderThread(t)
	readerID := kernel.NewUUID()

	cmd, err := commands.NewMarkThreadReadCommand(threadID, readerID)
	require.NoError(t, err)

	chatRepo := new(MockChatRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ChatRepository").Return(chatRepo).Once(),
		chatRepo.On("MarkThreadRead", ctx, threadID, readerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockChatUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkThreadReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	chatRepo.AssertExpectations(t)
}

func TestSendMessageCommandHandler_Handle_RetriedSend_SkipsNotification(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSendMessageCommand(
		kernel.NewUUID(), orderThread(t), kernel.NewUUID(), "Dana", kernel.RoleDriver, "On my way",
	)
	require.NoError(t, err)

	chatRepo := new(MockChatRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ChatRepository").Return(chatRepo).Once(),
		chatRepo.On("Add", ctx, mock.AnythingOfType("*chat.Message")).
			Return(false, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockChatUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSender)

	handler := commands.NewSendMessageCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
