package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/realtime"
)

// ChatSocketController handles the websocket push channel. The connection is
// bound to its authenticated user at upgrade time and joined to the presence
// registry; teardown always triggers Leave.
type ChatSocketController struct {
	registry *realtime.Registry
}

func NewChatSocketController(registry *realtime.Registry) *ChatSocketController {
	return &ChatSocketController{registry: registry}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; the token is the gate.
		return true
	},
}

type inboundFrame struct {
	Type string `json:"type"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

type ackFrame struct {
	Type string `json:"type"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades HTTP connections to websocket and keeps them registered
// until the client disconnects. Browsers cannot set headers on websocket
// requests, so the token arrives as a query parameter.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}
		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}
		userKey := strconv.FormatInt(claims.UserID, 10)

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just return.
			return
		}

		conn := realtime.NewConnection(userKey, ws)
		ctl.registry.Join(userKey, conn)
		conn.Start()
		defer func() {
			ctl.registry.Leave(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 20)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		if payload, err := json.Marshal(ackFrame{Type: "connected"}); err == nil {
			_ = conn.Push(payload)
		}

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			switch frame.Type {
			case "join":
				// Presence is established at upgrade; the explicit join is
				// kept as an acknowledged no-op for older clients.
				if payload, err := json.Marshal(ackFrame{Type: "joined"}); err == nil {
					_ = conn.Push(payload)
				}
			default:
				ctl.replyError(conn, "unsupported_type", "unknown frame type")
			}
		}
	}
}

func (ctl *ChatSocketController) replyError(conn *realtime.Connection, code, msg string) {
	if payload, err := json.Marshal(errorFrame{Type: "error", Code: code, Error: msg}); err == nil {
		_ = conn.Push(payload)
	}
}
