package store

import (
	"context"
	"sort"
	"sync"
)

type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string][]Conversation
	messages      map[string][]Message
	moods         map[string][]Mood
	journals      map[string]*Journal
	journalOrder  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string][]Conversation),
		messages:      make(map[string][]Message),
		moods:         make(map[string][]Mood),
		journals:      make(map[string]*Journal),
	}
}

func (ms *MemoryStore) CreateConversation(ctx context.Context, conv *Conversation) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.conversations[conv.UserID] = append(ms.conversations[conv.UserID], *conv)
	return nil
}

func (ms *MemoryStore) ListConversations(ctx context.Context, userID string) ([]Conversation, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return append([]Conversation{}, ms.conversations[userID]...), nil
}

func (ms *MemoryStore) AppendMessage(ctx context.Context, msg *Message) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.messages[msg.ConversationID] = append(ms.messages[msg.ConversationID], *msg)
	return nil
}

func (ms *MemoryStore) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return append([]Message{}, ms.messages[conversationID]...), nil
}

func (ms *MemoryStore) SaveMood(ctx context.Context, mood *Mood) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.moods[mood.UserID] = append(ms.moods[mood.UserID], *mood)
	return nil
}

func (ms *MemoryStore) ListMoods(ctx context.Context, userID string) ([]Mood, error) {
	ms.mu.RLock()
	moods := append([]Mood{}, ms.moods[userID]...)
	ms.mu.RUnlock()

	// reverse insertion order first so equal timestamps stay newest first
	for i, j := 0, len(moods)-1; i < j; i, j = i+1, j-1 {
		moods[i], moods[j] = moods[j], moods[i]
	}
	sort.SliceStable(moods, func(i, j int) bool {
		return moods[i].Timestamp.After(moods[j].Timestamp)
	})
	return moods, nil
}

func (ms *MemoryStore) CreateJournal(ctx context.Context, journal *Journal) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	j := *journal
	ms.journals[j.ID] = &j
	ms.journalOrder = append(ms.journalOrder, j.ID)
	return nil
}

func (ms *MemoryStore) ListJournals(ctx context.Context, userID string) ([]Journal, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	journals := make([]Journal, 0)
	for _, id := range ms.journalOrder {
		if j, ok := ms.journals[id]; ok && j.UserID == userID {
			journals = append(journals, *j)
		}
	}
	return journals, nil
}

func (ms *MemoryStore) GetJournal(ctx context.Context, id string) (*Journal, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	j, ok := ms.journals[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (ms *MemoryStore) UpdateJournal(ctx context.Context, id, title, content string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	j, ok := ms.journals[id]
	if !ok {
		return ErrNotFound
	}
	j.Title = title
	j.Content = content
	return nil
}

func (ms *MemoryStore) DeleteJournal(ctx context.Context, id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.journals[id]; !ok {
		return ErrNotFound
	}
	delete(ms.journals, id)
	for i, jid := range ms.journalOrder {
		if jid == id {
			ms.journalOrder = append(ms.journalOrder[:i], ms.journalOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (ms *MemoryStore) Close() error {
	return nil
}
