package service

import (
	"context"
	"strings"
	"time"

	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/repository"
)

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID, bikeID uint64, content string) (*model.Message, error)
	Conversations(ctx context.Context, viewerID uint64) ([]model.Conversation, error)
}

type messageService struct {
	msgRepo repository.MessageRepository
}

func NewMessageService(msgRepo repository.MessageRepository) MessageService {
	return &messageService{msgRepo: msgRepo}
}

// Send validates the content before touching storage and stamps the message
// with the current time; callers never supply the timestamp.
func (s *messageService) Send(ctx context.Context, senderID, receiverID, bikeID uint64, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}
	msg := &model.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		BikeID:     bikeID,
		Content:    content,
		SentAt:     time.Now(),
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Conversations loads every message the viewer participates in, already
// timestamp-ascending, and groups it per counterparty and bike.
func (s *messageService) Conversations(ctx context.Context, viewerID uint64) ([]model.Conversation, error) {
	msgs, err := s.msgRepo.ListByParticipant(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return GroupByConversation(msgs, viewerID), nil
}
