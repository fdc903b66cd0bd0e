package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/parley-chat/parley/internal/shared/goroutine"
	"github.com/parley-chat/parley/internal/shared/logger"
)

const relayPublishTimeout = 2 * time.Second

// DeliveryPublisher forwards a delivery to the other server instances.
type DeliveryPublisher interface {
	PublishDelivery(ctx context.Context, receiverID string, payload any) error
}

// RelayNotifier delivers through the local hub first and publishes to the
// other instances when the receiver is not connected here.
type RelayNotifier struct {
	hub       *Hub
	publisher DeliveryPublisher
	logger    logger.Interface

	inflight sync.WaitGroup
}

func NewRelayNotifier(hub *Hub, publisher DeliveryPublisher, log logger.Interface) *RelayNotifier {
	return &RelayNotifier{
		hub:       hub,
		publisher: publisher,
		logger:    log.Named("realtime.relay"),
	}
}

// Notify reports true only for a local delivery. Otherwise the payload is
// published in the background and Notify returns false without waiting.
func (r *RelayNotifier) Notify(receiverID string, payload any) bool {
	if r.hub.Notify(receiverID, payload) {
		return true
	}

	r.inflight.Add(1)
	goroutine.SafeGo(r.logger, "relay.publish", func() {
		defer r.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), relayPublishTimeout)
		defer cancel()
		if err := r.publisher.PublishDelivery(ctx, receiverID, payload); err != nil {
			r.logger.Warnw("failed to relay delivery", "receiver_id", receiverID, "error", err)
		}
	})
	return false
}

// Wait blocks until every background publish has finished.
func (r *RelayNotifier) Wait() {
	r.inflight.Wait()
}

// HandleRemote delivers an event published by another instance.
func (r *RelayNotifier) HandleRemote(receiverID string, payload json.RawMessage) {
	r.hub.Notify(receiverID, payload)
}
