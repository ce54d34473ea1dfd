package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/soulnest/soulnest/internal/api/handlers"
	"github.com/soulnest/soulnest/internal/connections"
	"github.com/soulnest/soulnest/internal/services"
	"github.com/soulnest/soulnest/internal/services/chat"
	"github.com/soulnest/soulnest/internal/store"
	"github.com/soulnest/soulnest/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransport(t *testing.T) {
	httpT, err := newTransport("http", "http://localhost:8001/api/chat")
	require.NoError(t, err)
	assert.IsType(t, &widget.HTTPTransport{}, httpT)

	wsT, err := newTransport("websocket", "http://localhost:8001/api/chat")
	require.NoError(t, err)
	require.IsType(t, &widget.WebSocketTransport{}, wsT)
	assert.Equal(t, "ws://localhost:8001/api/ws", wsT.(*widget.WebSocketTransport).URL())

	_, err = newTransport("carrier-pigeon", "http://localhost")
	assert.Error(t, err)
}

func TestWidgetPlainMode(t *testing.T) {
	t.Setenv("RATELIMIT_ENABLED", "false")

	router := mux.NewRouter()
	handlers.RegisterRoutes(router,
		services.NewServices(store.NewMemoryStore(), chat.CannedReplier{Text: "main sun raha hoon"}),
		connections.NewManager(connections.DefaultTimeouts))
	server := httptest.NewServer(router)
	defer server.Close()

	for _, transport := range []string{"http", "websocket"} {
		t.Run(transport, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetIn(strings.NewReader("hello\n"))
			cmd.SetOut(&out)
			cmd.SetArgs([]string{
				"--url", server.URL + "/api/chat",
				"--transport", transport,
				"--log-file", filepath.Join(t.TempDir(), "widget.log"),
				"--greeting-delay", "1ms",
			})

			require.NoError(t, cmd.ExecuteContext(context.Background()))
			assert.Contains(t, out.String(), "you> hello")
			assert.Contains(t, out.String(), "soulnest> main sun raha hoon")
			assert.Contains(t, out.String(), "soulnest> Hey 🤍")
		})
	}
}
