package usecases

import (
	"context"
	"fmt"

	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
)

// ResolveSessionUseCase turns a session token into the user it belongs to.
type ResolveSessionUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	denylist TokenDenylist
	logger   logger.Interface
}

func NewResolveSessionUseCase(
	userRepo user.Repository,
	tokens TokenService,
	denylist TokenDenylist,
	logger logger.Interface,
) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		denylist: denylist,
		logger:   logger,
	}
}

func (uc *ResolveSessionUseCase) Execute(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, errors.NewTokenInvalidError()
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		if errors.IsUnauthorizedError(err) {
			return nil, err
		}
		return nil, errors.NewTokenInvalidError()
	}

	revoked, err := uc.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		uc.logger.Errorw("failed to check token denylist", "error", err)
		return nil, fmt.Errorf("failed to check token: %w", err)
	}
	if revoked {
		return nil, errors.NewSessionRevokedError()
	}

	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load session user", "error", err, "user_id", claims.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewTokenInvalidError()
	}
	if err := u.CanLogin(); err != nil {
		return nil, err
	}

	return u, nil
}
