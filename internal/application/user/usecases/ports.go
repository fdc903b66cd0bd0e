package usecases

import (
	"context"
	"time"

	commondto "github.com/parley-chat/parley/internal/application/common/dto"
	"github.com/parley-chat/parley/internal/domain/shared"
)

// SessionToken is a signed session token handed to the client as a cookie.
type SessionToken struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// SessionClaims is what a verified session token says about its holder.
type SessionClaims struct {
	UserID    uint
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

type TokenService interface {
	Issue(userID uint, email string) (*SessionToken, error)
	Verify(token string) (*SessionClaims, error)
}

// TokenDenylist holds ids of tokens revoked before their expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type ImageStore interface {
	Upload(ctx context.Context, folder string, image *commondto.ImageUpload) (shared.ImageRef, error)
	Delete(ctx context.Context, storageID string) error
}
