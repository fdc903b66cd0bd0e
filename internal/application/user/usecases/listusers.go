package usecases

import (
	"context"
	"fmt"

	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/shared/logger"
)

// ListUsersUseCase returns everyone the current user can chat with.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, currentUserID uint) ([]*user.User, error) {
	users, err := uc.userRepo.ListExcept(ctx, currentUserID)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err, "user_id", currentUserID)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
