package chatrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/chat"
	"fooddelivery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormChatRepository implements ChatRepository using GORM.
type GormChatRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormChatRepository creates a new GORM chat repository.
func NewGormChatRepository(db *gorm.DB, tracker aggregateTracker) *GormChatRepository {
	return &GormChatRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a message to its thread. The insert ignores conflicts on the
// client-generated id, so a retried send lands exactly once.
func (r *GormChatRepository) Add(ctx context.Context, aggregate *chat.Message) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// GetAllByThread retrieves a thread's messages, sent-time ascending.
func (r *GormChatRepository) GetAllByThread(ctx context.Context, threadID chat.ThreadID) ([]*chat.Message, error) {
	if err := threadID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Order("sent_at").
		Find(&dtos, "thread_id = ?", threadID.String()).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*chat.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}

// MarkThreadRead flips the read flag on every message in the thread sent by
// someone other than the reader. Touching an empty thread affects no rows
// and is not an error.
func (r *GormChatRepository) MarkThreadRead(ctx context.Context, threadID chat.ThreadID, readerID kernel.UUID) error {
	if err := threadID.Validate(); err != nil {
		return err
	}
	if err := readerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("thread_id = ? AND sender_id <> ? AND read = ?", threadID.String(), readerID.Bytes(), false).
		Update("read", true).Error
}
