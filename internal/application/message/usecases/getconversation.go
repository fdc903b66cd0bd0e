package usecases

import (
	"context"
	"fmt"

	"github.com/parley-chat/parley/internal/application/message/dto"
	"github.com/parley-chat/parley/internal/domain/message"
	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/shared/logger"
)

type GetConversationQuery struct {
	CurrentUserID uint
	OtherUserID   uint
}

// GetConversationUseCase returns every message exchanged between two users,
// oldest first.
type GetConversationUseCase struct {
	messageRepo message.Repository
	userRepo    user.Repository
	mapper      *dto.Mapper
	logger      logger.Interface
}

func NewGetConversationUseCase(
	messageRepo message.Repository,
	userRepo user.Repository,
	mapper *dto.Mapper,
	logger logger.Interface,
) *GetConversationUseCase {
	return &GetConversationUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		mapper:      mapper,
		logger:      logger,
	}
}

func (uc *GetConversationUseCase) Execute(ctx context.Context, query GetConversationQuery) ([]*dto.MessageResponse, error) {
	other, err := uc.userRepo.GetByID(ctx, query.OtherUserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", query.OtherUserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if other == nil {
		return nil, message.NewReceiverNotFoundError()
	}

	msgs, err := uc.messageRepo.ListConversation(ctx, query.CurrentUserID, query.OtherUserID)
	if err != nil {
		uc.logger.Errorw("failed to list conversation", "error", err,
			"user_id", query.CurrentUserID,
			"other_user_id", query.OtherUserID,
		)
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}

	return uc.mapper.ToResponses(msgs)
}
