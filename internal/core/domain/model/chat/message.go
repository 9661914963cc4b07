// Package chat contains the append-only messaging model: messages grouped
// into threads keyed either by an order (customer and driver or restaurant
// talking about a specific delivery) or by a support pairing between a user
// and marketplace admins.
//
// Message ids are client-generated, so re-delivery after a network retry is
// idempotent: appending a message whose id already exists in the thread is a
// no-op. The log is ordered by sent-time ascending and messages are never
// edited or deleted; the only mutation is flipping the read flag.
package chat

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrMessageIsNotConstructed is returned when using an improperly initialized Message.
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage")
	// ErrBodyIsRequired is returned when a message has an empty body.
	ErrBodyIsRequired = errs.NewValueIsRequiredError("body")
)

// Message is a single entry in a chat thread's append-only log.
type Message struct {
	// id is client-generated so retries are idempotent
	id       kernel.UUID
	threadID ThreadID

	senderID   kernel.UUID
	senderName string
	senderRole kernel.Role

	body   string
	sentAt time.Time
	read   bool

	guard guard.ConstructorGuard
}

// NewMessage creates a validated, unread Message.
func NewMessage(
	id kernel.UUID,
	threadID ThreadID,
	senderID kernel.UUID,
	senderName string,
	senderRole kernel.Role,
	body string,
	now time.Time,
) (*Message, error) {
	if err := errors.Join(
		id.Validate(),
		threadID.Validate(),
		senderID.Validate(),
		senderRole.Validate(),
	); err != nil {
		return nil, err
	}

	if senderName == "" {
		return nil, errs.NewValueIsRequiredError("senderName")
	}
	if body == "" {
		return nil, ErrBodyIsRequired
	}

	return &Message{
		id:         id,
		threadID:   threadID,
		senderID:   senderID,
		senderName: senderName,
		senderRole: senderRole,
		body:       body,
		sentAt:     now.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreMessage reconstructs a Message from persistence, including its read flag.
func RestoreMessage(
	id kernel.UUID,
	threadID ThreadID,
	senderID kernel.UUID,
	senderName string,
	senderRole kernel.Role,
	body string,
	sentAt time.Time,
	read bool,
) (*Message, error) {
	m, err := NewMessage(id, threadID, senderID, senderName, senderRole, body, sentAt)
	if err != nil {
		return nil, err
	}

	m.read = read
	return m, nil
}

// Validate ensures the Message instance was properly constructed.
func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

// ID returns the client-generated message identifier.
func (m *Message) ID() kernel.UUID { return m.id }

// ThreadID returns the thread the message belongs to.
func (m *Message) ThreadID() ThreadID { return m.threadID }

// SenderID returns the sending user's identifier.
func (m *Message) SenderID() kernel.UUID { return m.senderID }

// SenderName returns the sending user's display name.
func (m *Message) SenderName() string { return m.senderName }

// SenderRole returns which surface the sender belongs to.
func (m *Message) SenderRole() kernel.Role { return m.senderRole }

// Body returns the message text.
func (m *Message) Body() string { return m.body }

// SentAt returns the server-side receive timestamp.
func (m *Message) SentAt() time.Time { return m.sentAt }

// IsRead reports whether the recipient has read the message.
func (m *Message) IsRead() bool { return m.read }

// MarkRead flips the read flag. The only mutation the log permits.
func (m *Message) MarkRead() {
	m.read = true
}
