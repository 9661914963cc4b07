package ports

import "context"

// Notification is a lifecycle event fanned out to the interested parties
// after a state change commits. Delivery is best-effort: a broker outage
// must never fail the business operation that produced the event.
type Notification struct {
	// Event names what happened, e.g. "order.assigned" or "chat.message".
	Event string

	// OrderID is the affected order, empty for non-order events.
	OrderID string

	// RecipientIDs lists the users the event concerns.
	RecipientIDs []string

	// Payload carries event-specific fields for the client to render.
	Payload map[string]any
}

// NotificationSender publishes lifecycle notifications to a message broker.
type NotificationSender interface {
	// Send publishes the notification. Implementations log and swallow
	// broker failures; callers rely on fire-and-forget semantics.
	Send(ctx context.Context, notification Notification) error
}
