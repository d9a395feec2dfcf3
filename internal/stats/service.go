package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/event"
	"github.com/plurality-game/plurality/internal/logger"
	"github.com/plurality-game/plurality/internal/repository"
)

// Service defines the interface for gameplay stats
type Service interface {
	RecordWin(ctx context.Context, surveyID uuid.UUID, userID string) error
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type service struct {
	repo repository.Stats
}

// NewService creates a new stats service
func NewService(repo repository.Stats) Service {
	return &service{repo: repo}
}

// RecordWin stores a win. Duplicate wins for the same survey are absorbed by
// the repository, so replayed events are harmless.
func (s *service) RecordWin(ctx context.Context, surveyID uuid.UUID, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if err := s.repo.RecordWin(ctx, surveyID, userID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextRecordWin, err)
	}
	return nil
}

// GetLeaderboard returns the top winners, capped at MaxLeaderboardLimit.
func (s *service) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}
	entries, err := s.repo.GetWinLeaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetLeaderboard, err)
	}
	return entries, nil
}

// SubscribeToWins registers a bus handler that records every game.won event.
func SubscribeToWins(bus event.Bus, svc Service) {
	bus.Subscribe(event.GameWon, func(ctx context.Context, e event.Event) error {
		payload, ok := e.Payload.(event.GameWonPayloadV1)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "event_type", e.Type)
			return nil
		}
		surveyID, err := uuid.Parse(payload.SurveyID)
		if err != nil {
			return fmt.Errorf("invalid survey id in %s event: %w", e.Type, err)
		}
		return svc.RecordWin(ctx, surveyID, payload.UserID)
	})
}
