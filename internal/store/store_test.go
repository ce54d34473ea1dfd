package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/soulnest/soulnest/internal/infrastructure/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]func(t *testing.T) Store {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Store {
			s, err := NewSQLiteStore(":memory:")
			require.NoError(t, err)
			return s
		},
	}

	// SOULNEST_TEST_REDIS_ADDR points the redis backend at a real server,
	// otherwise it runs against an in-process one
	stores["redis"] = func(t *testing.T) Store {
		addr := os.Getenv("SOULNEST_TEST_REDIS_ADDR")
		if addr == "" {
			addr = miniredis.RunT(t).Addr()
		}
		client := goredis.NewClient(&goredis.Options{Addr: addr, DB: 15})
		require.NoError(t, client.FlushDB(context.Background()).Err())
		return NewRedisStore(redis.NewServiceWithClient(client))
	}
	return stores
}

func TestStoreConversationsAndMessages(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for name, newStore := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			require.NoError(t, s.CreateConversation(ctx, &Conversation{ID: "c1", UserID: "u1", CreatedAt: base}))
			require.NoError(t, s.CreateConversation(ctx, &Conversation{ID: "c2", UserID: "u1", CreatedAt: base.Add(time.Hour)}))
			require.NoError(t, s.CreateConversation(ctx, &Conversation{ID: "c3", UserID: "u2", CreatedAt: base}))

			convs, err := s.ListConversations(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, convs, 2)
			assert.Equal(t, "c1", convs[0].ID)
			assert.Equal(t, "c2", convs[1].ID)
			assert.True(t, base.Equal(convs[0].CreatedAt))

			require.NoError(t, s.AppendMessage(ctx, &Message{ID: "m1", ConversationID: "c1", Sender: SenderUser, Text: "hello", Timestamp: base}))
			require.NoError(t, s.AppendMessage(ctx, &Message{ID: "m2", ConversationID: "c1", Sender: SenderAI, Text: "I hear you", Timestamp: base}))

			msgs, err := s.ListMessages(ctx, "c1")
			require.NoError(t, err)
			require.Len(t, msgs, 2)
			assert.Equal(t, SenderUser, msgs[0].Sender)
			assert.Equal(t, "I hear you", msgs[1].Text)

			empty, err := s.ListMessages(ctx, "unknown")
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestStoreMoodsNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	note := "long day"

	for name, newStore := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			require.NoError(t, s.SaveMood(ctx, &Mood{ID: "m1", UserID: "u1", Mood: "calm", Timestamp: base}))
			require.NoError(t, s.SaveMood(ctx, &Mood{ID: "m2", UserID: "u1", Mood: "tired", Note: &note, Timestamp: base.Add(time.Minute)}))

			moods, err := s.ListMoods(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, moods, 2)
			assert.Equal(t, "tired", moods[0].Mood)
			require.NotNil(t, moods[0].Note)
			assert.Equal(t, note, *moods[0].Note)
			assert.Nil(t, moods[1].Note)

			others, err := s.ListMoods(ctx, "u2")
			require.NoError(t, err)
			assert.Empty(t, others)
		})
	}
}

func TestStoreJournals(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for name, newStore := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			require.NoError(t, s.CreateJournal(ctx, &Journal{ID: "j1", UserID: "u1", Title: "Mon", Content: "rain", CreatedAt: base}))
			require.NoError(t, s.CreateJournal(ctx, &Journal{ID: "j2", UserID: "u1", Title: "Tue", Content: "sun", CreatedAt: base}))

			list, err := s.ListJournals(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "j1", list[0].ID)

			require.NoError(t, s.UpdateJournal(ctx, "j1", "Monday", "heavy rain"))
			j, err := s.GetJournal(ctx, "j1")
			require.NoError(t, err)
			assert.Equal(t, "Monday", j.Title)
			assert.Equal(t, "heavy rain", j.Content)
			assert.Equal(t, "u1", j.UserID)

			require.NoError(t, s.DeleteJournal(ctx, "j1"))
			_, err = s.GetJournal(ctx, "j1")
			assert.ErrorIs(t, err, ErrNotFound)

			list, err = s.ListJournals(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, "j2", list[0].ID)

			assert.ErrorIs(t, s.UpdateJournal(ctx, "missing", "t", "c"), ErrNotFound)
			assert.ErrorIs(t, s.DeleteJournal(ctx, "missing"), ErrNotFound)
		})
	}
}
