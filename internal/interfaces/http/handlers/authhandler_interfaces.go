package handlers

import (
	"context"

	"github.com/parley-chat/parley/internal/application/user/usecases"
	"github.com/parley-chat/parley/internal/domain/user"
)

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterWithPasswordCommand) (*usecases.RegisterWithPasswordResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*usecases.LoginWithPasswordResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}

type updateProfilePictureUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfilePictureCommand) (*user.User, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, currentUserID uint) ([]*user.User, error)
}
