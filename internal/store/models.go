package store

import "time"

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

type Conversation struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID             string    `json:"_id"`
	ConversationID string    `json:"conversation_id"`
	Sender         string    `json:"sender"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
}

type Mood struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user_id"`
	Mood      string    `json:"mood"`
	Note      *string   `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

type Journal struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
