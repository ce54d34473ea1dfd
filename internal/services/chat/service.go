package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soulnest/soulnest/internal/services/chat/models"
	"github.com/soulnest/soulnest/internal/store"
	"github.com/soulnest/soulnest/pkg/logger"
)

type Service struct {
	store   store.Store
	replier Replier
	now     func() time.Time
}

func NewService(st store.Store, replier Replier) *Service {
	return &Service{
		store:   st,
		replier: replier,
		now:     time.Now,
	}
}

// Exchange stores the user's message, produces a reply and stores it. A
// request without a conversation id starts a new conversation. A supplied id
// is used as is.
func (s *Service) Exchange(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = models.DefaultUserID
	}

	var conversationID string
	var history []store.Message
	if req.ConversationID != nil && *req.ConversationID != "" {
		conversationID = *req.ConversationID

		var err error
		history, err = s.store.ListMessages(ctx, conversationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load conversation history: %w", err)
		}
	} else {
		conv := &store.Conversation{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: s.now().UTC(),
		}
		if err := s.store.CreateConversation(ctx, conv); err != nil {
			return nil, fmt.Errorf("failed to create conversation: %w", err)
		}
		conversationID = conv.ID
		logger.Info(logger.CHAT, "Started conversation %s for %s", conversationID, userID)
	}

	if err := s.appendMessage(ctx, conversationID, store.SenderUser, req.Message); err != nil {
		return nil, err
	}

	reply, err := s.replier.Reply(ctx, history, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	if err := s.appendMessage(ctx, conversationID, store.SenderAI, reply); err != nil {
		return nil, err
	}

	return &models.ChatResponse{
		Message:        reply,
		Reply:          reply,
		ConversationID: conversationID,
	}, nil
}

func (s *Service) appendMessage(ctx context.Context, conversationID, sender, text string) error {
	msg := &store.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Sender:         sender,
		Text:           text,
		Timestamp:      s.now().UTC(),
	}
	if err := s.store.AppendMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to save %s message: %w", sender, err)
	}
	return nil
}

func (s *Service) ListConversations(ctx context.Context, userID string) ([]store.Conversation, error) {
	if userID == "" {
		userID = models.DefaultUserID
	}
	return s.store.ListConversations(ctx, userID)
}

func (s *Service) ListMessages(ctx context.Context, conversationID string) ([]store.Message, error) {
	return s.store.ListMessages(ctx, conversationID)
}
