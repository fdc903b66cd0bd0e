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

type RegisterWithPasswordCommand struct {
	Username        string
	Email           string
	Gender          string
	Password        string
	ConfirmPassword string
}

type RegisterWithPasswordResult struct {
	User  *user.User
	Token *SessionToken
}

type RegisterWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	passwordPolicy vo.PasswordPolicy
	tokens         TokenService
	logger         logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	policy vo.PasswordPolicy,
	tokens TokenService,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		passwordPolicy: policy,
		tokens:         tokens,
		logger:         logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	password, err := uc.passwordPolicy.NewConfirmedPassword(cmd.Password, cmd.ConfirmPassword)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	gender, err := vo.ParseGender(cmd.Gender)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		uc.logger.Infow("registration rejected", "reason", "email_taken", "email", utils.MaskEmail(cmd.Email))
		return nil, user.ErrEmailTaken
	}

	newUser, err := user.NewUser(email, username, gender)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	// A racing registration is caught by the unique index and comes back as ErrEmailTaken.
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// The user row stays even if no token can be issued.
	token, err := uc.tokens.Issue(newUser.ID(), newUser.Email().String())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", newUser.ID())
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return &RegisterWithPasswordResult{User: newUser, Token: token}, nil
}
