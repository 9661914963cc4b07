package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetThreadMessagesQueryIsNotConstructed = errors.New(
	"GetThreadMessagesQuery must be created via NewGetThreadMessagesQuery constructor",
)

// GetThreadMessagesQuery retrieves a chat thread's log, sent-time ascending.
type GetThreadMessagesQuery struct {
	threadID chat.ThreadID

	guard guard.ConstructorGuard
}

// NewGetThreadMessagesQuery creates a query for one thread's messages.
func NewGetThreadMessagesQuery(threadID chat.ThreadID) (GetThreadMessagesQuery, error) {
	if err := threadID.Validate(); err != nil {
		return GetThreadMessagesQuery{}, err
	}

	return GetThreadMessagesQuery{
		threadID: threadID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetThreadMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetThreadMessagesQueryIsNotConstructed)
}

// ThreadID returns the requested thread.
func (q GetThreadMessagesQuery) ThreadID() chat.ThreadID {
	return q.threadID
}

// ThreadMessageResponse is one entry in a thread's log.
type ThreadMessageResponse struct {
	ID         kernel.UUID
	SenderID   kernel.UUID
	SenderName string
	SenderRole string
	Body       string
	SentAt     time.Time
	Read       bool
}
