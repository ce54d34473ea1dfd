package widget

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/soulnest/soulnest/pkg/logger"
)

// WebSocketTransport runs each exchange over its own WebSocket connection:
// one frame out, one frame in.
type WebSocketTransport struct {
	url    string
	dialer *websocket.Dialer
}

func NewWebSocketTransport(wsURL string) *WebSocketTransport {
	return &WebSocketTransport{url: wsURL, dialer: websocket.DefaultDialer}
}

// WebSocketURLFor derives the WebSocket endpoint from the HTTP chat URL,
// e.g. http://host/api/chat becomes ws://host/api/ws.
func WebSocketURLFor(chatURL string) (string, error) {
	u, err := url.Parse(chatURL)
	if err != nil {
		return "", fmt.Errorf("invalid chat url %q: %w", chatURL, err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q in %q", u.Scheme, chatURL)
	}

	if strings.HasSuffix(u.Path, "/chat") {
		u.Path = strings.TrimSuffix(u.Path, "/chat") + "/ws"
	} else if !strings.HasSuffix(u.Path, "/ws") {
		u.Path = "/api/ws"
	}
	return u.String(), nil
}

func (t *WebSocketTransport) URL() string {
	return t.url
}

func (t *WebSocketTransport) Exchange(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	conn, resp, err := t.dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to connect (status %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteMessage(websocket.CloseMessage, closeMsg); err != nil {
		logger.Debug(logger.WIDGET, "Failed to send close frame: %v", err)
	}

	return DecodeResponse(data)
}
