// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/parley-chat/parley/internal/interfaces/http/handlers"
	"github.com/parley-chat/parley/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimiter.Limit(), cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthHandler.Logout)

		auth.PUT("/update-profile", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.UpdateProfile)
		auth.GET("/users", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ListUsers)
		auth.GET("/check", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Check)
	}
}
