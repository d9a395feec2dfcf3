package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/repository"
)

// GameRepository implements the game state repository for PostgreSQL
type GameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *pgxpool.Pool) repository.Game {
	return &GameRepository{db: db}
}

// GetGameState retrieves a player's game state, nil when none exists
func (r *GameRepository) GetGameState(ctx context.Context, surveyID uuid.UUID, userID string) (*domain.GameState, error) {
	query := `
		SELECT survey_id, user_id, guesses, score, win, total_votes, version, updated_at
		FROM game_states
		WHERE survey_id = $1 AND user_id = $2
	`
	var (
		state       domain.GameState
		guessesJSON []byte
	)
	err := r.db.QueryRow(ctx, query, surveyID, userID).Scan(
		&state.SurveyID, &state.UserID, &guessesJSON,
		&state.Score, &state.Win, &state.TotalVotes, &state.Version, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	if err := json.Unmarshal(guessesJSON, &state.Guesses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guesses: %w", err)
	}
	return &state, nil
}

// SaveGameState upserts a game state guarded by the optimistic version.
// The insert path expects Version == 0 (never persisted); the update path
// succeeds only when the stored version still matches. Anything else means
// a concurrent writer got there first and the caller gets domain.ErrConflict.
func (r *GameRepository) SaveGameState(ctx context.Context, state *domain.GameState) error {
	guessesJSON, err := json.Marshal(state.Guesses)
	if err != nil {
		return fmt.Errorf("failed to marshal guesses: %w", err)
	}

	query := `
		INSERT INTO game_states (survey_id, user_id, guesses, score, win, total_votes, version, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7)
		ON CONFLICT (survey_id, user_id) DO UPDATE
		SET guesses = EXCLUDED.guesses,
		    score = EXCLUDED.score,
		    win = EXCLUDED.win,
		    total_votes = EXCLUDED.total_votes,
		    version = game_states.version + 1,
		    updated_at = EXCLUDED.updated_at
		WHERE game_states.version = $8
		RETURNING version
	`
	var newVersion int
	err = r.db.QueryRow(ctx, query,
		state.SurveyID, state.UserID, guessesJSON,
		state.Score, state.Win, state.TotalVotes, state.UpdatedAt,
		state.Version,
	).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrConflict
		}
		return fmt.Errorf("failed to save game state: %w", err)
	}

	state.Version = newVersion
	return nil
}
