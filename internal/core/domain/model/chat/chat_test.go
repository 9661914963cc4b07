package chat_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validThread(t *testing.T) chat.ThreadID {
	t.Helper()
	threadID, err := chat.ThreadForOrder(kernel.NewUUID(), chat.ChannelCustomerDriver)
	require.NoError(t, err)
	return threadID
}

func TestNewMessage(t *testing.T) {
	now := time.Now()

	t.Run("creates an unread message", func(t *testing.T) {
		m, err := chat.NewMessage(
			kernel.NewUUID(), validThread(t), kernel.NewUUID(),
			"Dana", kernel.RoleDriver, "On my way", now,
		)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.False(t, m.IsRead())
		assert.Equal(t, "On my way", m.Body())
		assert.Equal(t, kernel.RoleDriver, m.SenderRole())
	})

	t.Run("requires a body", func(t *testing.T) {
		_, err := chat.NewMessage(
			kernel.NewUUID(), validThread(t), kernel.NewUUID(),
			"Dana", kernel.RoleDriver, "", now,
		)

		require.Error(t, err)
		assert.Equal(t, chat.ErrBodyIsRequired, err)
	})

	t.Run("requires a sender name", func(t *testing.T) {
		_, err := chat.NewMessage(
			kernel.NewUUID(), validThread(t), kernel.NewUUID(),
			"", kernel.RoleDriver, "hello", now,
		)

		require.Error(t, err)
	})

	t.Run("requires a valid role", func(t *testing.T) {
		_, err := chat.NewMessage(
			kernel.NewUUID(), validThread(t), kernel.NewUUID(),
			"Dana", kernel.RoleUnknown, "hello", now,
		)

		require.Error(t, err)
	})
}

func TestMessage_MarkRead(t *testing.T) {
	m, err := chat.NewMessage(
		kernel.NewUUID(), validThread(t), kernel.NewUUID(),
		"Dana", kernel.RoleDriver, "On my way", time.Now(),
	)
	require.NoError(t, err)

	m.MarkRead()

	assert.True(t, m.IsRead())
}

func TestThreadDerivation(t *testing.T) {
	t.Run("same order and channel yield the same thread", func(t *testing.T) {
		orderID := kernel.NewUUID()

		a, err := chat.ThreadForOrder(orderID, chat.ChannelCustomerDriver)
		require.NoError(t, err)
		b, err := chat.ThreadForOrder(orderID, chat.ChannelCustomerDriver)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("channels produce distinct threads", func(t *testing.T) {
		orderID := kernel.NewUUID()

		a, _ := chat.ThreadForOrder(orderID, chat.ChannelCustomerDriver)
		b, _ := chat.ThreadForOrder(orderID, chat.ChannelCustomerRestaurant)

		assert.NotEqual(t, a, b)
	})

	t.Run("support threads are per user", func(t *testing.T) {
		a, err := chat.ThreadForSupport(kernel.NewUUID())
		require.NoError(t, err)
		b, err := chat.ThreadForSupport(kernel.NewUUID())
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("invalid channel is rejected", func(t *testing.T) {
		_, err := chat.ThreadForOrder(kernel.NewUUID(), chat.ChannelUnknown)

		require.Error(t, err)
	})
}

func TestParseChannel(t *testing.T) {
	c, err := chat.ParseChannel("customer-driver")
	require.NoError(t, err)
	assert.Equal(t, chat.ChannelCustomerDriver, c)

	c, err = chat.ParseChannel("Customer-Restaurant")
	require.NoError(t, err)
	assert.Equal(t, chat.ChannelCustomerRestaurant, c)

	_, err = chat.ParseChannel("driver-restaurant")
	require.Error(t, err)
}
