package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/parley-chat/parley/internal/domain/message"
	"github.com/parley-chat/parley/internal/infrastructure/persistence/mappers"
	"github.com/parley-chat/parley/internal/infrastructure/persistence/models"
	"github.com/parley-chat/parley/internal/shared/logger"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
	logger logger.Interface
}

func NewMessageRepository(db *gorm.DB, logger logger.Interface) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
		logger: logger,
	}
}

var _ message.Repository = (*MessageRepository)(nil)

func (r *MessageRepository) Create(ctx context.Context, entity *message.Message) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create message", "sender_id", model.SenderID, "receiver_id", model.ReceiverID, "error", err)
		return fmt.Errorf("failed to create message: %w", err)
	}
	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set message ID: %w", err)
	}
	return nil
}

func (r *MessageRepository) ListConversation(ctx context.Context, a, b uint) ([]*message.Message, error) {
	var rows []*models.MessageModel
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list conversation", "a", a, "b", b, "error", err)
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

