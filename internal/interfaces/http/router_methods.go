package http

import (
	"github.com/parley-chat/parley/internal/interfaces/http/handlers"
	"github.com/parley-chat/parley/internal/interfaces/http/middleware"
	"github.com/parley-chat/parley/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/", handlers.Health)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupMessageRoutes(r.engine, &routes.MessageRouteConfig{
		MessageHandler: r.hdlrs.messageHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupRealtimeRoutes(r.engine, &routes.RealtimeRouteConfig{
		HubHandler:     r.hdlrs.hubHandler,
		AuthMiddleware: r.authMiddleware,
	})
}
