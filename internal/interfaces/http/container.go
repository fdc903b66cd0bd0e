package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	messageUsecases "github.com/parley-chat/parley/internal/application/message/usecases"
	"github.com/parley-chat/parley/internal/infrastructure/auth"
	"github.com/parley-chat/parley/internal/infrastructure/config"
	"github.com/parley-chat/parley/internal/infrastructure/pubsub"
	"github.com/parley-chat/parley/internal/infrastructure/realtime"
	"github.com/parley-chat/parley/internal/interfaces/http/middleware"
	"github.com/parley-chat/parley/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, and wires them together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter

	jwtSvc       *auth.JWTService
	tokenService *tokenServiceAdapter
	hasher       *auth.BcryptPasswordHasher
	images       *imageStoreAdapter
	hub          *realtime.Hub

	// Cross-instance delivery relay, only with Redis
	notifier    messageUsecases.DeliveryNotifier
	deliveryBus *pubsub.RedisDeliveryBus
	relay       *realtime.RelayNotifier
	relayCancel context.CancelFunc
}

// NewContainer wires every component from deps. Redis and the object store
// arrive already connected; with Redis it also starts the delivery relay.
func NewContainer(deps Dependencies) *Container {
	c := &Container{
		engine: gin.New(),
		db:     deps.DB,
		cfg:    deps.Config,
		log:    deps.Logger,
		redis:  deps.Redis,
	}

	// Section 1: Infrastructure - repositories, auth, storage, realtime hub
	c.initInfrastructure(deps)

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c
}

// Shutdown waits for pending relay publishes, stops the delivery relay and
// disconnects websocket clients. The database and Redis are owned by the caller.
func (c *Container) Shutdown() {
	if c.relay != nil {
		c.relay.Wait()
	}
	if c.relayCancel != nil {
		c.relayCancel()
	}
	c.hub.Shutdown()
}
