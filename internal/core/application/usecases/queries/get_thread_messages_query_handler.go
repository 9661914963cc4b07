package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetThreadMessagesQueryHandler reads a thread's log from the database.
type GetThreadMessagesQueryHandler struct {
	db *gorm.DB
}

// NewGetThreadMessagesQueryHandler creates a handler for thread queries.
// Requires a GORM database connection for query execution.
func NewGetThreadMessagesQueryHandler(db *gorm.DB) GetThreadMessagesQueryHandler {
	return GetThreadMessagesQueryHandler{db: db}
}

// Handle executes the query. An unknown thread yields an empty slice, which
// is indistinguishable from a thread nobody has written to yet.
func (h GetThreadMessagesQueryHandler) Handle(
	ctx context.Context,
	query GetThreadMessagesQuery,
) ([]ThreadMessageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	messages := make([]ThreadMessageResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_id,
			sender_name,
			sender_role,
			body,
			sent_at,
			read
		FROM chat_messages
		WHERE thread_id = ?
		ORDER BY sent_at
	`, query.ThreadID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ThreadMessageResponse
		var id, senderID uuid.UUID
		var senderRole kernel.Role

		if err = rows.Scan(
			&id,
			&senderID,
			&resp.SenderName,
			&senderRole,
			&resp.Body,
			&resp.SentAt,
			&resp.Read,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}
		resp.SenderRole = senderRole.String()

		messages = append(messages, resp)
	}

	return messages, rows.Err()
}
