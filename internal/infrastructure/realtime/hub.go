package realtime

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/parley-chat/parley/internal/shared/logger"
)

// Event names carried in Frame.Event.
const (
	EventOnlineUsers = "getOnlineUsers"
	EventNewMessage  = "newMessage"
	EventMessage     = "message"
)

const sendBufferSize = 256

// Frame is the JSON envelope exchanged over the socket.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Client is one live socket connection.
type Client struct {
	ID     string
	UserID string
	Send   chan *Frame
}

func NewClient(userID string) *Client {
	return &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		Send:   make(chan *Frame, sendBufferSize),
	}
}

// Hub owns the live clients and routes frames to them through the Registry.
type Hub struct {
	registry *Registry

	clients   map[string]*Client
	clientsMu sync.RWMutex

	logger logger.Interface
}

func NewHub(registry *Registry, log logger.Interface) *Hub {
	return &Hub{
		registry: registry,
		clients:  make(map[string]*Client),
		logger:   log.Named("realtime.hub"),
	}
}

func (h *Hub) Registry() *Registry {
	return h.registry
}

// Register adds the client and tells everyone who is online. The registry
// update and the broadcast share one critical section so snapshots reach
// every client in the order they were taken.
func (h *Hub) Register(client *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.clients[client.ID] = client
	online := h.registry.Connect(client.UserID, client.ID)

	h.logger.Infow("client connected",
		"user_id", client.UserID,
		"conn_id", client.ID,
		"online", len(online),
	)

	h.broadcastLocked(&Frame{Event: EventOnlineUsers, Data: online})
}

// Unregister removes the client and closes its send channel. Calling it twice
// for the same client is a no-op.
func (h *Hub) Unregister(client *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	current, ok := h.clients[client.ID]
	if !ok || current != client {
		return
	}
	delete(h.clients, client.ID)
	close(client.Send)

	userID, removed, online := h.registry.Disconnect(client.ID)

	h.logger.Infow("client disconnected",
		"user_id", userID,
		"conn_id", client.ID,
		"presence_removed", removed,
	)

	h.broadcastLocked(&Frame{Event: EventOnlineUsers, Data: online})
}

// Notify pushes a newMessage frame to receiverID's live connection.
// It reports false when the user is offline or the connection's buffer is full.
func (h *Hub) Notify(receiverID string, payload any) bool {
	connID, ok := h.registry.Lookup(receiverID)
	if !ok {
		h.logger.Debugw("receiver offline", "user_id", receiverID)
		return false
	}

	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	client, ok := h.clients[connID]
	if !ok {
		return false
	}
	return h.trySend(client, &Frame{Event: EventNewMessage, Data: payload})
}

// Echo answers an inbound message frame the way the socket greeting does.
func (h *Hub) Echo(client *Client, data any) bool {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	if _, ok := h.clients[client.ID]; !ok {
		return false
	}
	return h.trySend(client, &Frame{
		Event: EventMessage,
		Data:  fmt.Sprintf("Server got your message: %v", data),
	})
}

// broadcastLocked must be called with clientsMu held for writing.
func (h *Hub) broadcastLocked(frame *Frame) {
	for _, client := range h.clients {
		h.trySend(client, frame)
	}
}

// trySend must be called with clientsMu held so Send cannot be closed underneath it.
func (h *Hub) trySend(client *Client, frame *Frame) bool {
	select {
	case client.Send <- frame:
		return true
	default:
		h.logger.Warnw("send buffer full, dropping frame",
			"user_id", client.UserID,
			"conn_id", client.ID,
			"event", frame.Event,
		)
		return false
	}
}

// ClientCount returns the number of open connections.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// Shutdown closes every client's send channel. Each write pump then sends a
// close frame and the connection winds down on its own.
func (h *Hub) Shutdown() {
	h.clientsMu.Lock()
	clients := h.clients
	h.clients = make(map[string]*Client)
	for _, client := range clients {
		close(client.Send)
	}
	h.clientsMu.Unlock()

	for id := range clients {
		h.registry.Disconnect(id)
	}
	h.logger.Infow("hub shut down", "closed", len(clients))
}
