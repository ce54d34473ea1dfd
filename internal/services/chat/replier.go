package chat

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	openaiinfra "github.com/soulnest/soulnest/internal/infrastructure/openai"
	"github.com/soulnest/soulnest/internal/store"
	"github.com/soulnest/soulnest/pkg/logger"
)

// CannedReply is sent when no language model is configured.
const CannedReply = "Hey 🤍 I hear you. Tum jo feel kar rahe ho wo valid hai. " +
	"Thoda sa deep breath lo… main yahin hoon tumhare saath."

// historyLimit caps how many stored messages are replayed to the model.
const historyLimit = 20

// Replier produces the ai side of an exchange. history holds earlier
// messages of the conversation, oldest first, without the current one.
type Replier interface {
	Reply(ctx context.Context, history []store.Message, userText string) (string, error)
}

type CannedReplier struct {
	Text string
}

func (c CannedReplier) Reply(ctx context.Context, history []store.Message, userText string) (string, error) {
	if c.Text == "" {
		return CannedReply, nil
	}
	return c.Text, nil
}

type OpenAIReplier struct {
	openAIService *openaiinfra.Service
	systemPrompt  *SystemPrompt
}

func NewOpenAIReplier(openAIService *openaiinfra.Service, systemPrompt *SystemPrompt) *OpenAIReplier {
	return &OpenAIReplier{
		openAIService: openAIService,
		systemPrompt:  systemPrompt,
	}
}

func (r *OpenAIReplier) Reply(ctx context.Context, history []store.Message, userText string) (string, error) {
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: r.systemPrompt.String(),
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Sender == store.SenderAI {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userText,
	})

	logger.Debug(logger.CHAT, "Requesting completion with %d messages", len(messages))

	resp, err := r.openAIService.GetClient().CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.openAIService.GetModel(),
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
