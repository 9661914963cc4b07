// Package rabbitmq implements the notification sender port on a RabbitMQ
// topic exchange. Each lifecycle event is published once per recipient with
// the routing key "notifications.<userID>", so client-facing consumers can
// bind a queue per user.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeName = "notifications_topic"

// envelope is the wire format of one published notification.
type envelope struct {
	Event      string         `json:"event"`
	OrderID    string         `json:"orderId,omitempty"`
	Recipient  string         `json:"recipient"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// Publisher sends lifecycle notifications to a RabbitMQ topic exchange.
// Implements ports.NotificationSender.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
}

// NewPublisher connects to RabbitMQ, declares the notifications exchange and
// returns a ready publisher. The caller owns the connection and must Close it
// on shutdown.
func NewPublisher(url string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	if err = channel.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		conn:    conn,
		channel: channel,
		logger:  logger.With("component", "rabbitmq_publisher"),
	}, nil
}

// Send publishes the notification once per recipient. Broker failures are
// logged and swallowed: notification delivery is best-effort and must never
// roll back the state change that produced the event.
func (p *Publisher) Send(ctx context.Context, notification ports.Notification) error {
	for _, recipientID := range notification.RecipientIDs {
		body, err := json.Marshal(envelope{
			Event:      notification.Event,
			OrderID:    notification.OrderID,
			Recipient:  recipientID,
			Payload:    notification.Payload,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			p.logger.Error("failed to marshal notification",
				"event", notification.Event, "error", err)
			continue
		}

		routingKey := "notifications." + recipientID

		if err = p.channel.PublishWithContext(
			ctx,
			exchangeName,
			routingKey,
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				Body:         body,
				DeliveryMode: amqp.Persistent,
			},
		); err != nil {
			p.logger.Error("failed to publish notification",
				"event", notification.Event, "recipient", recipientID, "error", err)
			continue
		}

		p.logger.Debug("notification published",
			"event", notification.Event, "recipient", recipientID)
	}

	return nil
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
