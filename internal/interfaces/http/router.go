// Package http assembles the gin engine: dependency wiring, middleware and routes.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/parley-chat/parley/internal/infrastructure/realtime"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(deps Dependencies) *Router {
	return &Router{Container: NewContainer(deps)}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Hub returns the realtime hub serving /ws.
func (r *Router) Hub() *realtime.Hub {
	return r.hub
}
