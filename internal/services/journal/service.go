package journal

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/soulnest/soulnest/internal/store"
	"github.com/soulnest/soulnest/pkg/logger"
)

const defaultUserID = "default_user"

type EntryRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  string `json:"user_id"`
}

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req EntryRequest) (*store.Journal, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate journal id: %w", err)
	}

	userID := req.UserID
	if userID == "" {
		userID = defaultUserID
	}

	j := &store.Journal{
		ID:        id,
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.CreateJournal(ctx, j); err != nil {
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}

	logger.Info(logger.SERVICE, "Created journal %s for %s", j.ID, userID)
	return j, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]store.Journal, error) {
	if userID == "" {
		userID = defaultUserID
	}
	return s.store.ListJournals(ctx, userID)
}

// Get returns store.ErrNotFound for unknown ids, as do Update and Delete.
func (s *Service) Get(ctx context.Context, id string) (*store.Journal, error) {
	return s.store.GetJournal(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, req EntryRequest) error {
	return s.store.UpdateJournal(ctx, id, req.Title, req.Content)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteJournal(ctx, id); err != nil {
		return err
	}
	logger.Info(logger.SERVICE, "Deleted journal %s", id)
	return nil
}
