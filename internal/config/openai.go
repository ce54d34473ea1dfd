package config

import (
	"github.com/sashabaranov/go-openai"
	"github.com/soulnest/soulnest/pkg/logger"
)

// GetOpenAIKey returns the OpenAI key, empty when replies should stay canned
func GetOpenAIKey() string {
	value := GetEnvOrDefault("OPENAI_KEY", "")
	if value == "" {
		logger.Info(logger.CONFIG, "OPENAI_KEY not set - using canned replies")
	}
	return value
}

func GetOpenAIModel() string {
	return GetEnvOrDefault("OPENAI_MODEL", openai.GPT4oMini)
}
