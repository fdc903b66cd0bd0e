package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/parley-chat/parley/internal/shared/config"
)

const AccessTokenCookie = "access_token"

// SetSessionCookie writes the http-only session cookie. maxAge is in seconds
// and is derived from the token expiry by the caller.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookie, token, maxAge, cookiePath(cfg), cfg.Domain, cfg.Secure, true)
}

// ClearSessionCookie overwrites the session cookie with an expired empty value.
func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookie, "", -1, cookiePath(cfg), cfg.Domain, cfg.Secure, true)
}

// GetSessionToken reads the session token from the cookie, falling back to
// an "Authorization: Bearer" header for non-browser clients.
func GetSessionToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func cookiePath(cfg config.CookieConfig) string {
	if cfg.Path == "" {
		return "/"
	}
	return cfg.Path
}

func parseSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(sameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
