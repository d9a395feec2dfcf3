package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/plurality-game/plurality/internal/domain"
)

// Stats defines the interface for gameplay stats persistence
type Stats interface {
	// RecordWin stores a win for the user on a survey. Recording the same win
	// twice is a no-op, not an error.
	RecordWin(ctx context.Context, surveyID uuid.UUID, userID string) error
	GetWinLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}
