// Package pubsub relays realtime deliveries between server instances over
// Redis Pub/Sub.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/parley-chat/parley/internal/shared/goroutine"
	"github.com/parley-chat/parley/internal/shared/logger"
)

const deliveryChannel = "parley:hub:delivery"

// DeliveryEvent carries a newMessage payload for a receiver that may be
// connected to another instance.
type DeliveryEvent struct {
	ReceiverID string          `json:"receiver_id"`
	Payload    json.RawMessage `json:"payload"`
	Timestamp  int64           `json:"timestamp"`
	InstanceID string          `json:"instance_id"`
}

// RedisDeliveryBus publishes and consumes DeliveryEvents.
type RedisDeliveryBus struct {
	client     *redis.Client
	logger     logger.Interface
	instanceID string
}

func NewRedisDeliveryBus(client *redis.Client, log logger.Interface) *RedisDeliveryBus {
	return &RedisDeliveryBus{
		client:     client,
		logger:     log.Named("pubsub.delivery"),
		instanceID: uuid.NewString(),
	}
}

func (b *RedisDeliveryBus) InstanceID() string {
	return b.instanceID
}

// PublishDelivery hands payload to every other instance.
func (b *RedisDeliveryBus) PublishDelivery(ctx context.Context, receiverID string, payload any) error {
	data, err := b.encode(receiverID, payload)
	if err != nil {
		return err
	}

	if err := b.client.Publish(ctx, deliveryChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish delivery", "receiver_id", receiverID, "error", err)
		return fmt.Errorf("failed to publish delivery: %w", err)
	}

	b.logger.Debugw("delivery published", "receiver_id", receiverID)
	return nil
}

// SubscribeDeliveries calls handler for each event published by another
// instance. It reconnects with backoff and returns only when ctx is done.
func (b *RedisDeliveryBus) SubscribeDeliveries(ctx context.Context, handler func(receiverID string, payload json.RawMessage)) error {
	return b.subscribeWithReconnect(ctx, func(raw string) {
		event, ok := b.decode(raw)
		if !ok {
			return
		}
		handler(event.ReceiverID, event.Payload)
	})
}

func (b *RedisDeliveryBus) encode(receiverID string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal delivery payload: %w", err)
	}
	data, err := json.Marshal(DeliveryEvent{
		ReceiverID: receiverID,
		Payload:    body,
		Timestamp:  time.Now().UTC().Unix(),
		InstanceID: b.instanceID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal delivery event: %w", err)
	}
	return data, nil
}

// decode drops malformed events and the ones this instance published.
func (b *RedisDeliveryBus) decode(raw string) (DeliveryEvent, bool) {
	var event DeliveryEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		b.logger.Warnw("failed to unmarshal delivery event", "error", err)
		return event, false
	}
	if event.InstanceID == b.instanceID || event.ReceiverID == "" {
		return event, false
	}
	return event, true
}

func (b *RedisDeliveryBus) subscribeWithReconnect(ctx context.Context, handler func(payload string)) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.logger.Warnw("delivery subscription disconnected, reconnecting",
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisDeliveryBus) subscribe(ctx context.Context, handler func(payload string)) error {
	sub := b.client.Subscribe(ctx, deliveryChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", deliveryChannel, err)
	}
	b.logger.Infow("subscribed to delivery channel", "channel", deliveryChannel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("delivery channel closed")
				return nil
			}
			goroutine.SafeGo(b.logger, "delivery-handler", func() {
				handler(msg.Payload)
			})
		}
	}
}
