// Package realtime serves the websocket used for presence and message pushes.
package realtime

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	rt "github.com/parley-chat/parley/internal/infrastructure/realtime"
	"github.com/parley-chat/parley/internal/interfaces/http/middleware"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/goroutine"
	"github.com/parley-chat/parley/internal/shared/logger"
	"github.com/parley-chat/parley/internal/shared/utils"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 64 * 1024
)

// HubHandler upgrades authenticated requests to websockets and attaches them to the hub.
type HubHandler struct {
	hub      *rt.Hub
	upgrader websocket.Upgrader
	logger   logger.Interface
}

func NewHubHandler(hub *rt.Hub, allowedOrigins []string, log logger.Interface) *HubHandler {
	return &HubHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return middleware.OriginAllowed(r.Header.Get("Origin"), allowedOrigins)
			},
		},
		logger: log,
	}
}

// ServeWS handles GET /ws?userId=<id>. The userId must be the caller's own id
// and defaults to it when omitted.
func (h *HubHandler) ServeWS(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
		return
	}

	userID := strconv.FormatUint(uint64(current.ID()), 10)
	if requested := c.Query("userId"); requested != "" && requested != userID {
		h.logger.Warnw("websocket userId does not match session",
			"user_id", userID,
			"requested", requested,
			"ip", c.ClientIP(),
		)
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("userId does not match the session"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("failed to upgrade to websocket",
			"error", err,
			"user_id", userID,
			"ip", c.ClientIP(),
		)
		return
	}

	client := rt.NewClient(userID)
	h.hub.Register(client)

	goroutine.SafeGo(h.logger, "ws.writePump", func() { h.writePump(client, conn) })
	h.readPump(client, conn)
}

func (h *HubHandler) readPump(client *rt.Client, conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.Warnw("websocket read error",
					"error", err,
					"user_id", client.UserID,
				)
			}
			return
		}

		var frame rt.Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.logger.Debugw("ignoring malformed frame", "error", err, "user_id", client.UserID)
			continue
		}

		switch frame.Event {
		case rt.EventMessage:
			h.hub.Echo(client, frame.Data)
		default:
			h.logger.Debugw("unhandled websocket event", "event", frame.Event, "user_id", client.UserID)
		}
	}
}

func (h *HubHandler) writePump(client *rt.Client, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case frame, ok := <-client.Send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteJSON(frame); err != nil {
				h.logger.Warnw("failed to write to websocket",
					"error", err,
					"user_id", client.UserID,
				)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
