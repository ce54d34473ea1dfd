package mood

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/soulnest/soulnest/internal/store"
	"github.com/soulnest/soulnest/pkg/logger"
)

const defaultUserID = "default_user"

type LogRequest struct {
	Mood   string  `json:"mood" validate:"required"`
	Note   *string `json:"note"`
	UserID string  `json:"user_id"`
}

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

func (s *Service) Log(ctx context.Context, req LogRequest) (*store.Mood, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate mood id: %w", err)
	}

	userID := req.UserID
	if userID == "" {
		userID = defaultUserID
	}

	m := &store.Mood{
		ID:        id,
		UserID:    userID,
		Mood:      req.Mood,
		Note:      req.Note,
		Timestamp: s.now().UTC(),
	}
	if err := s.store.SaveMood(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save mood: %w", err)
	}

	logger.Debug(logger.SERVICE, "Logged mood %q for %s", m.Mood, userID)
	return m, nil
}

// List returns the user's moods newest first.
func (s *Service) List(ctx context.Context, userID string) ([]store.Mood, error) {
	if userID == "" {
		userID = defaultUserID
	}
	return s.store.ListMoods(ctx, userID)
}
