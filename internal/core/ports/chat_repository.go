package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/kernel"
)

// ChatRepository defines the persistence contract for the append-only
// message log.
type ChatRepository interface {
	// Add appends a message to its thread. Message ids are client-generated,
	// so appending an id that already exists is a no-op rather than an
	// error; the bool reports whether a new row was written.
	Add(ctx context.Context, aggregate *chat.Message) (bool, error)

	// GetAllByThread retrieves a thread's messages ordered by sent-time
	// ascending. An unknown thread yields an empty slice, not an error.
	GetAllByThread(ctx context.Context, threadID chat.ThreadID) ([]*chat.Message, error)

	// MarkThreadRead flips the read flag on every message in the thread that
	// was sent by someone other than readerID.
	MarkThreadRead(ctx context.Context, threadID chat.ThreadID, readerID kernel.UUID) error
}
