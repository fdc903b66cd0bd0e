package http

import (
	"github.com/parley-chat/parley/internal/interfaces/http/handlers"
	realtimeHandlers "github.com/parley-chat/parley/internal/interfaces/http/handlers/realtime"
	"github.com/parley-chat/parley/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	authHandler    *handlers.AuthHandler
	messageHandler *handlers.MessageHandler
	hubHandler     *realtimeHandlers.HubHandler
}

// ============================================================
// Section 3: Handlers and middlewares
// ============================================================

func (c *Container) initHandlers() {
	cfg := c.cfg
	log := c.log
	maxUpload := int64(cfg.Storage.MaxUploadMB) << 20

	c.authMiddleware = middleware.NewAuthMiddleware(c.ucs.resolveSession, log)
	c.rateLimiter = middleware.NewRateLimiter(c.newRateLimiter(), "auth", log)

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(
			c.ucs.register,
			c.ucs.login,
			c.ucs.logout,
			c.ucs.updateProfile,
			c.ucs.listUsers,
			cfg.Auth.Cookie,
			maxUpload,
			log,
		),
		messageHandler: handlers.NewMessageHandler(c.ucs.sendMessage, c.ucs.getConversation, maxUpload, log),
		hubHandler:     realtimeHandlers.NewHubHandler(c.hub, cfg.Server.AllowedOrigins, log),
	}
}
