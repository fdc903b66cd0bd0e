package http

import (
	"context"

	commondto "github.com/parley-chat/parley/internal/application/common/dto"
	"github.com/parley-chat/parley/internal/application/user/usecases"
	"github.com/parley-chat/parley/internal/domain/shared"
	"github.com/parley-chat/parley/internal/infrastructure/auth"
	"github.com/parley-chat/parley/internal/infrastructure/storage"
)

// tokenServiceAdapter adapts auth.JWTService to usecases.TokenService interface
type tokenServiceAdapter struct {
	*auth.JWTService
}

func (a *tokenServiceAdapter) Issue(userID uint, email string) (*usecases.SessionToken, error) {
	issued, err := a.JWTService.Issue(userID, email)
	if err != nil {
		return nil, err
	}
	return &usecases.SessionToken{
		Value:     issued.Token,
		ID:        issued.ID,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

func (a *tokenServiceAdapter) Verify(token string) (*usecases.SessionClaims, error) {
	claims, err := a.JWTService.Verify(token)
	if err != nil {
		return nil, err
	}
	out := &usecases.SessionClaims{
		UserID:  claims.UserID,
		Email:   claims.Subject,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// imageStoreAdapter adapts an ObjectStore to the ImageStore port of both the
// user and message use cases.
type imageStoreAdapter struct {
	store ObjectStore
}

func (a *imageStoreAdapter) Upload(ctx context.Context, folder string, image *commondto.ImageUpload) (shared.ImageRef, error) {
	return a.store.Upload(ctx, folder, storage.Object{
		Body:        image.Body,
		Size:        image.Size,
		ContentType: image.ContentType,
		Filename:    image.Filename,
	})
}

func (a *imageStoreAdapter) Delete(ctx context.Context, storageID string) error {
	return a.store.Delete(ctx, storageID)
}
