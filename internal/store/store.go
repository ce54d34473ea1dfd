// Package store persists conversations, messages, moods and journals.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Store is implemented by MemoryStore, RedisStore and SQLiteStore. Callers
// assign ids and timestamps; stores persist them verbatim.
type Store interface {
	CreateConversation(ctx context.Context, conv *Conversation) error
	ListConversations(ctx context.Context, userID string) ([]Conversation, error)

	AppendMessage(ctx context.Context, msg *Message) error
	// ListMessages returns a conversation's messages oldest first.
	ListMessages(ctx context.Context, conversationID string) ([]Message, error)

	SaveMood(ctx context.Context, mood *Mood) error
	// ListMoods returns a user's moods newest first.
	ListMoods(ctx context.Context, userID string) ([]Mood, error)

	CreateJournal(ctx context.Context, journal *Journal) error
	ListJournals(ctx context.Context, userID string) ([]Journal, error)
	GetJournal(ctx context.Context, id string) (*Journal, error)
	UpdateJournal(ctx context.Context, id, title, content string) error
	DeleteJournal(ctx context.Context, id string) error

	Close() error
}
