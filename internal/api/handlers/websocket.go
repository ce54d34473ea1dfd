package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/soulnest/soulnest/internal/api/middleware"
	"github.com/soulnest/soulnest/internal/config"
	"github.com/soulnest/soulnest/internal/connections"
	"github.com/soulnest/soulnest/internal/services/chat"
	chatModels "github.com/soulnest/soulnest/internal/services/chat/models"
	"github.com/soulnest/soulnest/pkg/httpext"
	"github.com/soulnest/soulnest/pkg/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || middleware.OriginAllowed(origin, config.GetAllowedOrigins())
	},
}

// HandleChatWebSocket serves the chat exchange over a WebSocket. Each text
// frame carries one ChatRequest and is answered by one ChatResponse frame, or
// an error envelope.
func HandleChatWebSocket(chatService *chat.Service, manager *connections.Manager, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(logger.WEBSOCKET, "Failed to upgrade connection: %v", err)
		return
	}

	manager.AddConnection(conn, r.RemoteAddr)
	defer func() {
		manager.RemoveConnection(conn)
		conn.Close()
		logger.Info(logger.WEBSOCKET, "Connection from %s closed (%d open)", r.RemoteAddr, manager.GetConnectionCount())
	}()
	logger.Info(logger.WEBSOCKET, "Connection from %s opened (%d open)", r.RemoteAddr, manager.GetConnectionCount())

	timeouts := manager.GetTimeouts()
	_ = conn.SetReadDeadline(time.Now().Add(timeouts.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(timeouts.PongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go pingLoop(conn, timeouts, done)

	write := func(v interface{}) error {
		_ = conn.SetWriteDeadline(time.Now().Add(timeouts.WriteWait))
		return conn.WriteJSON(v)
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn(logger.WEBSOCKET, "Unexpected WebSocket closure: %v", err)
			}
			return
		}

		var req chatModels.ChatRequest
		if err := json.Unmarshal(data, &req); err != nil {
			if err := write(httpext.ErrorResponse{Error: "Invalid request format"}); err != nil {
				return
			}
			continue
		}
		if err := validate.Struct(&req); err != nil {
			if err := write(httpext.ErrorResponse{Error: "Invalid request", Detail: err.Error()}); err != nil {
				return
			}
			continue
		}

		resp, err := chatService.Exchange(r.Context(), req)
		if err != nil {
			logger.Error(logger.WEBSOCKET, "Failed to process chat: %v", err)
			if err := write(httpext.ErrorResponse{Error: "Failed to process chat"}); err != nil {
				return
			}
			continue
		}

		if err := write(resp); err != nil {
			logger.Error(logger.WEBSOCKET, "Failed to write reply: %v", err)
			return
		}
		manager.RecordExchange(conn)
	}
}

// pingLoop keeps idle connections alive. WriteControl may run concurrently
// with the reader loop's writes.
func pingLoop(conn *websocket.Conn, timeouts connections.TimeoutConfig, done <-chan struct{}) {
	ticker := time.NewTicker(timeouts.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(timeouts.WriteWait)); err != nil {
				return
			}
		}
	}
}
