package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/infrastructure/ratelimit"
	"github.com/parley-chat/parley/internal/shared/constants"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubResolver struct {
	user *user.User
	err  error
	seen string
}

func (s *stubResolver) Execute(_ context.Context, token string) (*user.User, error) {
	s.seen = token
	return s.user, s.err
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(user.UserSnapshot{
		ID:       7,
		Email:    "a@x.com",
		Username: "alice",
		Gender:   "female",
		Active:   true,
	})
	require.NoError(t, err)
	return u
}

// ==================== Auth ====================

func TestRequireAuth(t *testing.T) {
	resolver := &stubResolver{user: testUser(t)}
	m := NewAuthMiddleware(resolver, logger.NewLogger())

	r := gin.New()
	r.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": u.ID(), "uid": c.GetUint(constants.ContextKeyUserID)})
	})

	t.Run("cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "tok-cookie"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":7,"uid":7}`, w.Body.String())
		assert.Equal(t, "tok-cookie", resolver.seen)
	})

	t.Run("bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer tok-header")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok-header", resolver.seen)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Not authenticated")
	})
}

func TestRequireAuth_ResolverErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"expired", errors.NewTokenExpiredError(), http.StatusUnauthorized},
		{"revoked", errors.NewSessionRevokedError(), http.StatusUnauthorized},
		{"backend failure", stderrors.New("redis: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(&stubResolver{err: tt.err}, logger.NewLogger())
			r := gin.New()
			r.GET("/me", m.RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer x")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.NotContains(t, w.Body.String(), "redis")
		})
	}
}

// ==================== CORS ====================

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		r.ServeHTTP(w, req)

		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestOriginAllowed(t *testing.T) {
	list := []string{"https://app.example.com"}
	assert.True(t, OriginAllowed("", list))
	assert.True(t, OriginAllowed("https://app.example.com", list))
	assert.False(t, OriginAllowed("https://other.example.com", list))
}

// ==================== Rate limit ====================

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (bool, error) {
	return false, stderrors.New("redis down")
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(ratelimit.NewMemoryLimiter(2, time.Minute), "auth", logger.NewLogger())

	r := gin.New()
	r.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	rl := NewRateLimiter(brokenLimiter{}, "auth", logger.NewLogger())

	r := gin.New()
	r.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// ==================== Recovery / request id ====================

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXRequestID, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
}
