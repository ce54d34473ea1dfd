package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/soulnest/soulnest/internal/api/middleware"
	"github.com/soulnest/soulnest/internal/config"
	"github.com/soulnest/soulnest/internal/connections"
	"github.com/soulnest/soulnest/internal/services"
)

func RegisterRoutes(router *mux.Router, services *services.Services, manager *connections.Manager) {
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.CORS(config.GetAllowedOrigins()))
	api.Use(middleware.RateLimit("global"))

	chatLimit := middleware.RateLimit("chat")
	journalLimit := middleware.RateLimit("journal")

	api.HandleFunc("/", HandleRoot).Methods("GET")

	// Chat
	api.Handle("/chat", chatLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleChat(services.GetChatService(), w, r)
	}))).Methods("POST", "OPTIONS")
	api.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		HandleChatWebSocket(services.GetChatService(), manager, w, r)
	}).Methods("GET")

	// Conversation history
	api.HandleFunc("/conversations", func(w http.ResponseWriter, r *http.Request) {
		HandleListConversations(services.GetChatService(), w, r)
	}).Methods("GET")
	api.HandleFunc("/conversations/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		HandleListMessages(services.GetChatService(), w, r)
	}).Methods("GET")

	// Moods
	api.Handle("/mood", journalLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleSaveMood(services.GetMoodService(), w, r)
	}))).Methods("POST", "OPTIONS")
	api.HandleFunc("/moods", func(w http.ResponseWriter, r *http.Request) {
		HandleListMoods(services.GetMoodService(), w, r)
	}).Methods("GET")

	// Journals
	api.Handle("/journal", journalLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleCreateJournal(services.GetJournalService(), w, r)
	}))).Methods("POST", "OPTIONS")
	api.HandleFunc("/journals", func(w http.ResponseWriter, r *http.Request) {
		HandleListJournals(services.GetJournalService(), w, r)
	}).Methods("GET")
	api.HandleFunc("/journals/{id}", func(w http.ResponseWriter, r *http.Request) {
		HandleGetJournal(services.GetJournalService(), w, r)
	}).Methods("GET")
	api.Handle("/journals/{id}", journalLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleUpdateJournal(services.GetJournalService(), w, r)
	}))).Methods("PUT")
	api.HandleFunc("/journals/{id}", func(w http.ResponseWriter, r *http.Request) {
		HandleDeleteJournal(services.GetJournalService(), w, r)
	}).Methods("DELETE")
	// preflight for PUT and DELETE, answered by the CORS middleware
	api.HandleFunc("/journals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods("OPTIONS")
}
