package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/parley-chat/parley/internal/interfaces/http/handlers"
	"github.com/parley-chat/parley/internal/interfaces/http/middleware"
)

// MessageRouteConfig holds dependencies for message routes.
type MessageRouteConfig struct {
	MessageHandler *handlers.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupMessageRoutes configures conversation routes. All of them need a session.
func SetupMessageRoutes(engine *gin.Engine, cfg *MessageRouteConfig) {
	messages := engine.Group("/messages")
	messages.Use(cfg.AuthMiddleware.RequireAuth())
	{
		messages.GET("/:receiverId/", cfg.MessageHandler.GetConversation)
		messages.POST("/send/:receiverId", cfg.MessageHandler.Send)
	}
}
