package usecases

import (
	"context"
	"fmt"

	"github.com/parley-chat/parley/internal/shared/logger"
)

type LogoutCommand struct {
	Token string
}

type LogoutUseCase struct {
	tokens   TokenService
	denylist TokenDenylist
	logger   logger.Interface
}

func NewLogoutUseCase(tokens TokenService, denylist TokenDenylist, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		tokens:   tokens,
		denylist: denylist,
		logger:   logger,
	}
}

// Execute revokes the presented token until it would have expired anyway.
// A missing or already invalid token is not an error.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.Token == "" {
		return nil
	}

	claims, err := uc.tokens.Verify(cmd.Token)
	if err != nil {
		return nil
	}

	if err := uc.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		uc.logger.Errorw("failed to revoke session token", "error", err, "user_id", claims.UserID)
		return fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("user logged out successfully", "user_id", claims.UserID)

	return nil
}
