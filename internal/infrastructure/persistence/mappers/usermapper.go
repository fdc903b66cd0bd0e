package mappers

import (
	"fmt"

	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/infrastructure/persistence/models"
)

// UserMapper converts between the user aggregate and its table row.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return userMapper{}
}

func (userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(user.UserSnapshot{
		ID:           model.ID,
		Email:        model.Email,
		Username:     model.Username,
		Gender:       model.Gender,
		PasswordHash: model.PasswordHash,
		ProfileImage: imageRefFromColumns(model.ProfilePicture, model.ProfileStorageID),
		Active:       model.IsActive,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return entity, nil
}

func (userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	url, storageID := imageRefToColumns(entity.ProfileImage())
	return &models.UserModel{
		ID:               entity.ID(),
		Email:            entity.Email().String(),
		Username:         entity.Username().String(),
		PasswordHash:     entity.PasswordHash(),
		Gender:           entity.Gender().String(),
		ProfilePicture:   url,
		ProfileStorageID: storageID,
		IsActive:         entity.IsActive(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m userMapper) ToEntities(list []*models.UserModel) ([]*user.User, error) {
	return mapSlice(list, m.ToEntity)
}
