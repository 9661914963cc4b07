// Package chatrepo implements the append-only message log with GORM.
package chatrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for persisting chat messages.
// The primary key is the client-generated message id, which is what makes
// re-delivered sends idempotent.
type MessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ThreadID   string    `gorm:"index"`
	SenderID   uuid.UUID `gorm:"type:uuid"`
	SenderName string
	SenderRole int
	Body       string
	SentAt     time.Time `gorm:"autoCreateTime:false"`
	Read       bool
}

// TableName specifies the database table name for chat messages.
func (MessageDTO) TableName() string {
	return "chat_messages"
}

func fromDomain(aggregate *chat.Message) MessageDTO {
	return MessageDTO{
		ID:         aggregate.ID().Bytes(),
		ThreadID:   aggregate.ThreadID().String(),
		SenderID:   aggregate.SenderID().Bytes(),
		SenderName: aggregate.SenderName(),
		SenderRole: int(aggregate.SenderRole()),
		Body:       aggregate.Body(),
		SentAt:     aggregate.SentAt(),
		Read:       aggregate.IsRead(),
	}
}

func toDomain(dto MessageDTO) (*chat.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	return chat.RestoreMessage(
		id, chat.ThreadID(dto.ThreadID), senderID, dto.SenderName,
		kernel.Role(dto.SenderRole), dto.Body, dto.SentAt, dto.Read,
	)
}
