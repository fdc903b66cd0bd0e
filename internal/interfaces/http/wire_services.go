package http

import (
	"context"

	"github.com/parley-chat/parley/internal/application/user/usecases"
	"github.com/parley-chat/parley/internal/infrastructure/auth"
	"github.com/parley-chat/parley/internal/infrastructure/cache"
	"github.com/parley-chat/parley/internal/infrastructure/pubsub"
	"github.com/parley-chat/parley/internal/infrastructure/ratelimit"
	"github.com/parley-chat/parley/internal/infrastructure/realtime"
	"github.com/parley-chat/parley/internal/shared/goroutine"
)

// ============================================================
// Section 1: Infrastructure - repositories, auth, storage, hub
// ============================================================

func (c *Container) initInfrastructure(deps Dependencies) {
	cfg := c.cfg

	c.repos = newRepositories(c.db, c.log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessTTL())
	c.tokenService = &tokenServiceAdapter{c.jwtSvc}
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	c.images = &imageStoreAdapter{store: deps.Objects}
	c.hub = realtime.NewHub(realtime.NewRegistry(), c.log)
	c.notifier = c.hub
	if c.redis != nil {
		c.initDeliveryRelay()
	}
}

// initDeliveryRelay lets a message reach a receiver connected to another instance.
func (c *Container) initDeliveryRelay() {
	c.deliveryBus = pubsub.NewRedisDeliveryBus(c.redis, c.log)
	relay := realtime.NewRelayNotifier(c.hub, c.deliveryBus, c.log)
	c.relay = relay
	c.notifier = relay

	ctx, cancel := context.WithCancel(context.Background())
	c.relayCancel = cancel
	goroutine.SafeGo(c.log, "delivery-relay", func() {
		_ = c.deliveryBus.SubscribeDeliveries(ctx, relay.HandleRemote)
	})
	c.log.Infow("delivery relay started", "instance_id", c.deliveryBus.InstanceID())
}

// newTokenDenylist shares revocations through Redis when it is available.
func (c *Container) newTokenDenylist() usecases.TokenDenylist {
	if c.redis != nil {
		return cache.NewRedisTokenDenylist(c.redis)
	}
	c.log.Warnw("redis disabled, token revocations are kept in process memory")
	return cache.NewMemoryTokenDenylist()
}

// newRateLimiter returns nil when rate limiting is disabled; the middleware
// treats that as allow-all.
func (c *Container) newRateLimiter() ratelimit.Limiter {
	rl := c.cfg.RateLimit
	if !rl.Enabled {
		return nil
	}
	if c.redis != nil {
		return ratelimit.NewRedisLimiter(c.redis, rl.Requests, rl.Window())
	}
	return ratelimit.NewMemoryLimiter(rl.Requests, rl.Window())
}
