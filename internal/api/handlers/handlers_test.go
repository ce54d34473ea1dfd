package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/soulnest/soulnest/internal/connections"
	"github.com/soulnest/soulnest/internal/services"
	"github.com/soulnest/soulnest/internal/services/chat"
	"github.com/soulnest/soulnest/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	t.Setenv("RATELIMIT_ENABLED", "false")
	t.Setenv("ALLOWED_ORIGINS", "")

	router := mux.NewRouter()
	svc := services.NewServices(store.NewMemoryStore(), chat.CannedReplier{Text: "I hear you"})
	RegisterRoutes(router, svc, connections.NewManager(connections.DefaultTimeouts))
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHandleRoot(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Banner, decodeBody[map[string]string](t, w)["message"])
}

func TestHandleChat(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "new conversation",
			body:           map[string]interface{}{"message": "hello", "conversation_id": nil, "user_id": "default_user"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing message",
			body:           map[string]interface{}{"conversation_id": nil},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request",
		},
		{
			name:           "malformed body",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			w := doJSON(t, router, http.MethodPost, "/api/chat", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody[map[string]string](t, w)["error"])
				return
			}

			resp := decodeBody[map[string]string](t, w)
			assert.Equal(t, "I hear you", resp["message"])
			assert.Equal(t, "I hear you", resp["reply"])
			assert.NotEmpty(t, resp["conversation_id"])
		})
	}
}

func TestChatHistory(t *testing.T) {
	router := newTestRouter(t)

	first := decodeBody[map[string]string](t, doJSON(t, router, http.MethodPost, "/api/chat",
		map[string]interface{}{"message": "hello", "user_id": "u1"}))
	convID := first["conversation_id"]
	require.NotEmpty(t, convID)

	second := decodeBody[map[string]string](t, doJSON(t, router, http.MethodPost, "/api/chat",
		map[string]interface{}{"message": "again", "conversation_id": convID, "user_id": "u1"}))
	assert.Equal(t, convID, second["conversation_id"])

	w := doJSON(t, router, http.MethodGet, "/api/conversations?user_id=u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	conversations := decodeBody[[]store.Conversation](t, w)
	require.Len(t, conversations, 1)
	assert.Equal(t, convID, conversations[0].ID)

	w = doJSON(t, router, http.MethodGet, "/api/conversations/"+convID+"/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	messages := decodeBody[[]store.Message](t, w)
	require.Len(t, messages, 4)
	assert.Equal(t, store.SenderUser, messages[0].Sender)
	assert.Equal(t, "hello", messages[0].Text)
	assert.Equal(t, store.SenderAI, messages[1].Sender)
	assert.Equal(t, "again", messages[2].Text)
}

func TestMoods(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/mood", map[string]string{"mood": "calm", "user_id": "u1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mood saved successfully 💫", decodeBody[map[string]string](t, w)["status"])

	w = doJSON(t, router, http.MethodPost, "/api/mood", map[string]string{"mood": "anxious", "user_id": "u1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/mood", map[string]string{"user_id": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/moods?user_id=u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	moods := decodeBody[[]store.Mood](t, w)
	require.Len(t, moods, 2)
	assert.Equal(t, "anxious", moods[0].Mood)
	assert.Equal(t, "calm", moods[1].Mood)
}

func TestJournals(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/journal",
		map[string]string{"title": "Monday", "content": "Long day", "user_id": "u1"})
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeBody[map[string]string](t, w)["journal_id"]
	require.NotEmpty(t, id)

	w = doJSON(t, router, http.MethodGet, "/api/journals?user_id=u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]store.Journal](t, w), 1)

	w = doJSON(t, router, http.MethodPut, "/api/journals/"+id,
		map[string]string{"title": "Monday", "content": "Better evening"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Journal updated ✨", decodeBody[map[string]string](t, w)["status"])

	w = doJSON(t, router, http.MethodGet, "/api/journals/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Better evening", decodeBody[store.Journal](t, w).Content)

	w = doJSON(t, router, http.MethodDelete, "/api/journals/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Journal deleted 🗑️", decodeBody[map[string]string](t, w)["status"])

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w = doJSON(t, router, method, "/api/journals/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, "Journal not found", decodeBody[map[string]string](t, w)["error"])
	}

	w = doJSON(t, router, http.MethodPut, "/api/journals/missing",
		map[string]string{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGlobalRateLimit(t *testing.T) {
	router := newTestRouter(t)
	t.Setenv("RATELIMIT_ENABLED", "true")
	t.Setenv("RATELIMIT_GLOBAL", "2")
	limited := mux.NewRouter()
	RegisterRoutes(limited, services.NewServices(store.NewMemoryStore(), chat.CannedReplier{}), connections.NewManager(connections.DefaultTimeouts))

	codes := make([]int, 0, 3)
	for _, path := range []string{"/api/", "/api/moods", "/api/journals"} {
		codes = append(codes, doJSON(t, limited, http.MethodGet, path, nil).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// routers built with limits disabled are unaffected
	assert.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/api/", nil).Code)
}

func TestPreflight(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/chat", "/api/journals/abc"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code, path)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.True(t, strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST"))
	}
}
