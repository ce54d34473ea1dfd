package models

// DefaultUserID is used when a request carries no user id. There is no real
// identity model.
const DefaultUserID = "default_user"

// ChatRequest is the body the widget posts to /api/chat.
type ChatRequest struct {
	Message        string  `json:"message" validate:"required"`
	ConversationID *string `json:"conversation_id"`
	UserID         string  `json:"user_id"`
}

// ChatResponse carries the reply twice: `message` is what the widget reads,
// `reply` is kept for older clients.
type ChatResponse struct {
	Message        string `json:"message"`
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
}
