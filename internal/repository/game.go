package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/plurality-game/plurality/internal/domain"
)

// Game defines the interface for game state persistence.
//
// Concurrent submissions for the same (survey, user) are serialized through
// optimistic concurrency: SaveGameState persists only when the stored version
// still equals state.Version, otherwise it returns domain.ErrConflict and the
// caller reloads and retries. The state the service receives is therefore
// always a single consistent snapshot.
type Game interface {
	// GetGameState returns the stored state, or nil when the player has not
	// started a game for this survey.
	GetGameState(ctx context.Context, surveyID uuid.UUID, userID string) (*domain.GameState, error)
	// SaveGameState upserts the state, guarded by state.Version.
	// On success the state's Version is advanced to the stored value.
	SaveGameState(ctx context.Context, state *domain.GameState) error
}
