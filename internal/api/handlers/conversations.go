package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/soulnest/soulnest/internal/services/chat"
	"github.com/soulnest/soulnest/pkg/httpext"
	"github.com/soulnest/soulnest/pkg/logger"
)

func HandleListConversations(chatService *chat.Service, w http.ResponseWriter, r *http.Request) {
	conversations, err := chatService.ListConversations(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		logger.Error(logger.HANDLER, "Failed to list conversations: %v", err)
		httpext.JsonError(w, "Failed to list conversations", http.StatusInternalServerError)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, conversations)
}

func HandleListMessages(chatService *chat.Service, w http.ResponseWriter, r *http.Request) {
	messages, err := chatService.ListMessages(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		logger.Error(logger.HANDLER, "Failed to list messages: %v", err)
		httpext.JsonError(w, "Failed to list messages", http.StatusInternalServerError)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, messages)
}
