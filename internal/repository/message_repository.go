package repository

import (
	"context"

	"github.com/pedalmarket/backend/internal/model"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	// ListByParticipant returns every message the user sent or received,
	// timestamp-ascending, with sender, receiver and bike dereferenced.
	ListByParticipant(ctx context.Context, userID uint64) ([]model.Message, error)
	DeleteByBike(ctx context.Context, bikeID uint64) error
	SetDB(db *gorm.DB)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) SetDB(db *gorm.DB) {
	r.db = db
}

func (r *messageRepository) Create(ctx context.Context, msg *model.Message) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) ListByParticipant(ctx context.Context, userID uint64) ([]model.Message, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var msgs []model.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Preload("Bike").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("sent_at ASC, id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *messageRepository) DeleteByBike(ctx context.Context, bikeID uint64) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Where("bike_id = ?", bikeID).Delete(&model.Message{}).Error
}
