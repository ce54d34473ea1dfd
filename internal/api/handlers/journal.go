package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/soulnest/soulnest/internal/services/journal"
	"github.com/soulnest/soulnest/internal/store"
	"github.com/soulnest/soulnest/pkg/httpext"
	"github.com/soulnest/soulnest/pkg/logger"
)

// journalError maps store.ErrNotFound to 404 and anything else to 500.
func journalError(w http.ResponseWriter, action string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		httpext.JsonError(w, "Journal not found", http.StatusNotFound)
		return
	}
	logger.Error(logger.HANDLER, "Failed to %s journal: %v", action, err)
	httpext.JsonError(w, "Failed to "+action+" journal", http.StatusInternalServerError)
}

func HandleCreateJournal(journalService *journal.Service, w http.ResponseWriter, r *http.Request) {
	var req journal.EntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	j, err := journalService.Create(r.Context(), req)
	if err != nil {
		journalError(w, "create", err)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, map[string]string{"journal_id": j.ID})
}

func HandleListJournals(journalService *journal.Service, w http.ResponseWriter, r *http.Request) {
	journals, err := journalService.List(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		journalError(w, "list", err)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, journals)
}

func HandleGetJournal(journalService *journal.Service, w http.ResponseWriter, r *http.Request) {
	j, err := journalService.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		journalError(w, "get", err)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, j)
}

func HandleUpdateJournal(journalService *journal.Service, w http.ResponseWriter, r *http.Request) {
	var req journal.EntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := journalService.Update(r.Context(), mux.Vars(r)["id"], req); err != nil {
		journalError(w, "update", err)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, map[string]string{"status": "Journal updated ✨"})
}

func HandleDeleteJournal(journalService *journal.Service, w http.ResponseWriter, r *http.Request) {
	if err := journalService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		journalError(w, "delete", err)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, map[string]string{"status": "Journal deleted 🗑️"})
}
