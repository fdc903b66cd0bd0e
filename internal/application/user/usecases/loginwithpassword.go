package usecases

import (
	"context"
	"fmt"

	"github.com/parley-chat/parley/internal/domain/user"
	vo "github.com/parley-chat/parley/internal/domain/user/valueobjects"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
	"github.com/parley-chat/parley/internal/shared/utils"
)

type LoginWithPasswordCommand struct {
	Email     string
	Password  string
	IPAddress string
}

type LoginWithPasswordResult struct {
	User  *user.User
	Token *SessionToken
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenService
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown email and wrong password look the same to the caller.
	if existingUser == nil {
		uc.logger.Infow("login failed", "reason", "unknown_email", "email", utils.MaskEmail(cmd.Email), "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Infow("login failed", "reason", "bad_password", "user_id", existingUser.ID(), "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := existingUser.CanLogin(); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(existingUser.ID(), existingUser.Email().String())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &LoginWithPasswordResult{User: existingUser, Token: token}, nil
}
