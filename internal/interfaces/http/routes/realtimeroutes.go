package routes

import (
	"github.com/gin-gonic/gin"

	realtimeHandlers "github.com/parley-chat/parley/internal/interfaces/http/handlers/realtime"
	"github.com/parley-chat/parley/internal/interfaces/http/middleware"
)

// RealtimeRouteConfig contains dependencies for the websocket route.
type RealtimeRouteConfig struct {
	HubHandler     *realtimeHandlers.HubHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupRealtimeRoutes configures the presence/push websocket.
// GET /ws?userId=<id> (authenticated by session)
func SetupRealtimeRoutes(engine *gin.Engine, cfg *RealtimeRouteConfig) {
	engine.GET("/ws", cfg.AuthMiddleware.RequireAuth(), cfg.HubHandler.ServeWS)
}
