package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/repository"
)

// StatsRepository implements the stats repository for PostgreSQL
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) repository.Stats {
	return &StatsRepository{db: db}
}

// RecordWin stores a win; replays of the same win are absorbed by the
// unique constraint
func (r *StatsRepository) RecordWin(ctx context.Context, surveyID uuid.UUID, userID string) error {
	query := `
		INSERT INTO game_wins (survey_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (survey_id, user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, surveyID, userID); err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}
	return nil
}

// GetWinLeaderboard returns users ordered by total wins descending
func (r *StatsRepository) GetWinLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT user_id, COUNT(*) AS wins
		FROM game_wins
		GROUP BY user_id
		ORDER BY wins DESC, user_id ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Wins); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return entries, nil
}
