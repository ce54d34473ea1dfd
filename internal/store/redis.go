package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/soulnest/soulnest/internal/infrastructure/redis"
	"github.com/soulnest/soulnest/pkg/logger"
)

// RedisStore keeps each record as a JSON string. Per-user and
// per-conversation lists hold insertion order.
type RedisStore struct {
	redisService *redis.Service
}

func NewRedisStore(redisService *redis.Service) *RedisStore {
	return &RedisStore{redisService: redisService}
}

func userConversationsKey(userID string) string { return fmt.Sprintf("user:%s:conversations", userID) }
func userMoodsKey(userID string) string         { return fmt.Sprintf("user:%s:moods", userID) }
func userJournalsKey(userID string) string      { return fmt.Sprintf("user:%s:journals", userID) }
func messagesKey(conversationID string) string  { return fmt.Sprintf("conversation:%s:messages", conversationID) }
func journalKey(id string) string               { return "journal:" + id }

func (rs *RedisStore) CreateConversation(ctx context.Context, conv *Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return rs.redisService.RPush(ctx, userConversationsKey(conv.UserID), string(data))
}

func (rs *RedisStore) ListConversations(ctx context.Context, userID string) ([]Conversation, error) {
	return decodeList[Conversation](rs.redisService.LRange(ctx, userConversationsKey(userID), 0, -1))
}

func (rs *RedisStore) AppendMessage(ctx context.Context, msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return rs.redisService.RPush(ctx, messagesKey(msg.ConversationID), string(data))
}

func (rs *RedisStore) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	return decodeList[Message](rs.redisService.LRange(ctx, messagesKey(conversationID), 0, -1))
}

func (rs *RedisStore) SaveMood(ctx context.Context, mood *Mood) error {
	data, err := json.Marshal(mood)
	if err != nil {
		return err
	}
	return rs.redisService.LPush(ctx, userMoodsKey(mood.UserID), string(data))
}

func (rs *RedisStore) ListMoods(ctx context.Context, userID string) ([]Mood, error) {
	return decodeList[Mood](rs.redisService.LRange(ctx, userMoodsKey(userID), 0, -1))
}

func (rs *RedisStore) CreateJournal(ctx context.Context, journal *Journal) error {
	data, err := json.Marshal(journal)
	if err != nil {
		return err
	}
	if err := rs.redisService.Set(ctx, journalKey(journal.ID), string(data), 0); err != nil {
		return err
	}
	return rs.redisService.RPush(ctx, userJournalsKey(journal.UserID), journal.ID)
}

func (rs *RedisStore) ListJournals(ctx context.Context, userID string) ([]Journal, error) {
	ids, err := rs.redisService.LRange(ctx, userJournalsKey(userID), 0, -1)
	if err != nil {
		return nil, err
	}

	journals := make([]Journal, 0, len(ids))
	for _, id := range ids {
		j, err := rs.GetJournal(ctx, id)
		if errors.Is(err, ErrNotFound) {
			logger.Warn(logger.STORE, "Journal %s listed for %s but missing", id, userID)
			continue
		}
		if err != nil {
			return nil, err
		}
		journals = append(journals, *j)
	}
	return journals, nil
}

func (rs *RedisStore) GetJournal(ctx context.Context, id string) (*Journal, error) {
	data, err := rs.redisService.Get(ctx, journalKey(id))
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var j Journal
	if err := json.Unmarshal([]byte(data), &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (rs *RedisStore) UpdateJournal(ctx context.Context, id, title, content string) error {
	j, err := rs.GetJournal(ctx, id)
	if err != nil {
		return err
	}
	j.Title = title
	j.Content = content

	data, err := json.Marshal(j)
	if err != nil {
		return err
	}
	return rs.redisService.Set(ctx, journalKey(id), string(data), 0)
}

func (rs *RedisStore) DeleteJournal(ctx context.Context, id string) error {
	j, err := rs.GetJournal(ctx, id)
	if err != nil {
		return err
	}
	if err := rs.redisService.Delete(ctx, journalKey(id)); err != nil {
		return err
	}
	return rs.redisService.LRem(ctx, userJournalsKey(j.UserID), 0, id)
}

func (rs *RedisStore) Close() error {
	return rs.redisService.Close()
}

func decodeList[T any](raw []string, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	for _, item := range raw {
		var v T
		if err := json.Unmarshal([]byte(item), &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
