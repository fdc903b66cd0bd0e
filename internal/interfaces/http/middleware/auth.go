package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/shared/constants"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
	"github.com/parley-chat/parley/internal/shared/utils"
)

// SessionResolver resolves a session token to its user.
type SessionResolver interface {
	Execute(ctx context.Context, token string) (*user.User, error)
}

type AuthMiddleware struct {
	resolver SessionResolver
	logger   logger.Interface
}

func NewAuthMiddleware(resolver SessionResolver, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c)
		if token == "" {
			utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
			c.Abort()
			return
		}

		u, err := m.resolver.Execute(c.Request.Context(), token)
		if err != nil {
			if !errors.IsUnauthorizedError(err) {
				m.logger.Errorw("failed to resolve session", "error", err, "path", c.Request.URL.Path)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, u)
		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyToken, token)

		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(constants.ContextKeyUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok && u != nil
}
