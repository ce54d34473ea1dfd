package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/soulnest/soulnest/internal/config"
	"github.com/soulnest/soulnest/internal/infrastructure/openai"
	"github.com/soulnest/soulnest/internal/infrastructure/redis"
	"github.com/soulnest/soulnest/internal/services/chat"
	"github.com/soulnest/soulnest/internal/services/journal"
	"github.com/soulnest/soulnest/internal/services/mood"
	"github.com/soulnest/soulnest/internal/store"
)

var (
	// Mutex for thread-safe initialization
	servicesMu sync.RWMutex
)

type Services struct {
	store          store.Store
	chatService    *chat.Service
	moodService    *mood.Service
	journalService *journal.Service
}

// InitializeServices builds every service on top of the configured store
func InitializeServices() (*Services, error) {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	log.Info().Msg("Initializing core services")

	st, err := newStore(config.GetStoreBackend())
	if err != nil {
		return nil, err
	}

	var replier chat.Replier = chat.CannedReplier{}
	if openAIService := openai.NewService(); openAIService != nil {
		prompt := chat.NewSystemPrompt(chat.CorePrompt)
		prompt.SetCustom(config.GetEnvOrDefault("SYSTEM_PROMPT_EXTRA", ""))
		replier = chat.NewOpenAIReplier(openAIService, prompt)
		log.Info().Str("model", openAIService.GetModel()).Msg("Replies generated with OpenAI")
	} else {
		log.Info().Msg("Replies are canned")
	}

	log.Info().Msg("All services initialized successfully")
	return NewServices(st, replier), nil
}

// NewServices wires services around an existing store and replier
func NewServices(st store.Store, replier chat.Replier) *Services {
	return &Services{
		store:          st,
		chatService:    chat.NewService(st, replier),
		moodService:    mood.NewService(st),
		journalService: journal.NewService(st),
	}
}

func newStore(backend string) (store.Store, error) {
	switch backend {
	case config.StoreMemory:
		log.Info().Msg("Using in-memory storage")
		return store.NewMemoryStore(), nil
	case config.StoreRedis:
		redisService := redis.NewService()
		if redisService == nil {
			log.Warn().Msg("Falling back to in-memory storage")
			return store.NewMemoryStore(), nil
		}
		if err := redisService.Ping(context.Background()); err != nil {
			log.Error().Err(err).Msg("Redis connection failed, falling back to in-memory storage")
			return store.NewMemoryStore(), nil
		}
		log.Info().Msg("Using Redis storage")
		return store.NewRedisStore(redisService), nil
	case config.StoreSQLite:
		path := config.GetSQLitePath()
		st, err := store.NewSQLiteStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store at %s: %w", path, err)
		}
		log.Info().Str("path", path).Msg("Using SQLite storage")
		return st, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// GetChatService returns the chat service
func (s *Services) GetChatService() *chat.Service {
	return s.chatService
}

// GetMoodService returns the mood service
func (s *Services) GetMoodService() *mood.Service {
	return s.moodService
}

// GetJournalService returns the journal service
func (s *Services) GetJournalService() *journal.Service {
	return s.journalService
}

// Close releases the underlying store
func (s *Services) Close() error {
	return s.store.Close()
}
