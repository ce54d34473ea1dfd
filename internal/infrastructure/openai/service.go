package openai

import (
	"sync"

	"github.com/sashabaranov/go-openai"
	"github.com/soulnest/soulnest/internal/config"
	"github.com/soulnest/soulnest/pkg/logger"
)

type Service struct {
	mu     sync.RWMutex
	client *openai.Client
	model  string
}

// NewService returns nil when no OpenAI key is configured.
func NewService() *Service {
	logger.Info(logger.SERVICE, "Initialising OpenAI service")
	key := config.GetOpenAIKey()

	if key == "" {
		logger.Warn(logger.SERVICE, "OpenAI service not configured - OPENAI_KEY missing")
		return nil
	}

	return NewServiceWithClient(openai.NewClient(key), config.GetOpenAIModel())
}

// NewServiceWithClient wraps a preconfigured client, e.g. one pointed at a
// compatible endpoint.
func NewServiceWithClient(client *openai.Client, model string) *Service {
	return &Service{
		client: client,
		model:  model,
	}
}

func (s *Service) GetClient() *openai.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *Service) GetModel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}
