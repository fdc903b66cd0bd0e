package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-chat/parley/internal/shared/config"
	"github.com/parley-chat/parley/internal/shared/errors"
)

func recordError(err error) (*httptest.ResponseRecorder, APIResponse) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ErrorResponseWithError(c, err)

	var resp APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestErrorResponseWithError_AppError(t *testing.T) {
	w, resp := recordError(fmt.Errorf("wrapped: %w", errors.NewConflictError("Email already registered")))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)
	assert.Equal(t, "Email already registered", resp.Error.Message)
}

func TestErrorResponseWithError_HidesRawErrors(t *testing.T) {
	w, resp := recordError(stderrors.New("dial tcp 10.0.0.5:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "internal_error", resp.Error.Type)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestSessionCookieRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	SetSessionCookie(c, cookieConfigForTest(), "tok", 3600)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, AccessTokenCookie, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = req
	assert.Equal(t, "tok", GetSessionToken(c2))
}

func TestGetSessionToken_BearerFallback(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc.def")

	assert.Equal(t, "abc.def", GetSessionToken(c))
}

func cookieConfigForTest() config.CookieConfig {
	return config.CookieConfig{Path: "/", Secure: true, SameSite: "None"}
}
