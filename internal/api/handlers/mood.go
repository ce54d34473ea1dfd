package handlers

import (
	"net/http"

	"github.com/soulnest/soulnest/internal/services/mood"
	"github.com/soulnest/soulnest/pkg/httpext"
	"github.com/soulnest/soulnest/pkg/logger"
)

func HandleSaveMood(moodService *mood.Service, w http.ResponseWriter, r *http.Request) {
	var req mood.LogRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := moodService.Log(r.Context(), req); err != nil {
		logger.Error(logger.HANDLER, "Failed to save mood: %v", err)
		httpext.JsonError(w, "Failed to save mood", http.StatusInternalServerError)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, map[string]string{"status": "Mood saved successfully 💫"})
}

func HandleListMoods(moodService *mood.Service, w http.ResponseWriter, r *http.Request) {
	moods, err := moodService.List(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		logger.Error(logger.HANDLER, "Failed to list moods: %v", err)
		httpext.JsonError(w, "Failed to list moods", http.StatusInternalServerError)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, moods)
}
