package handlers

import (
	"net/http"

	"github.com/soulnest/soulnest/internal/services/chat"
	chatModels "github.com/soulnest/soulnest/internal/services/chat/models"
	"github.com/soulnest/soulnest/pkg/httpext"
	"github.com/soulnest/soulnest/pkg/logger"
)

// HandleChat answers one widget message
func HandleChat(chatService *chat.Service, w http.ResponseWriter, r *http.Request) {
	logger.Debug(logger.HANDLER, "Starting chat handler")

	var req chatModels.ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := chatService.Exchange(r.Context(), req)
	if err != nil {
		logger.Error(logger.HANDLER, "Failed to process chat: %v", err)
		httpext.JsonError(w, "Failed to process chat", http.StatusInternalServerError)
		return
	}

	logger.Info(logger.HANDLER, "Chat reply sent for conversation %s", resp.ConversationID)
	httpext.JsonResponse(w, http.StatusOK, resp)
}
