package mappers

import (
	"fmt"

	"github.com/parley-chat/parley/internal/domain/message"
	"github.com/parley-chat/parley/internal/infrastructure/persistence/models"
)

type MessageMapper interface {
	ToEntity(model *models.MessageModel) (*message.Message, error)
	ToModel(entity *message.Message) *models.MessageModel
	ToEntities(models []*models.MessageModel) ([]*message.Message, error)
}

type messageMapper struct{}

func NewMessageMapper() MessageMapper {
	return messageMapper{}
}

func (messageMapper) ToEntity(model *models.MessageModel) (*message.Message, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := message.ReconstructMessage(message.MessageSnapshot{
		ID:         model.ID,
		SenderID:   model.SenderID,
		ReceiverID: model.ReceiverID,
		Content:    derefString(model.Content),
		Image:      imageRefFromColumns(model.ImageURL, model.ImageID),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message %d: %w", model.ID, err)
	}
	return entity, nil
}

func (messageMapper) ToModel(entity *message.Message) *models.MessageModel {
	if entity == nil {
		return nil
	}
	url, storageID := imageRefToColumns(entity.Image())
	return &models.MessageModel{
		ID:         entity.ID(),
		SenderID:   entity.SenderID(),
		ReceiverID: entity.ReceiverID(),
		Content:    stringPtr(entity.Content()),
		ImageURL:   url,
		ImageID:    storageID,
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m messageMapper) ToEntities(list []*models.MessageModel) ([]*message.Message, error) {
	return mapSlice(list, m.ToEntity)
}
