package game

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plurality-game/plurality/internal/domain"
)

func TestSampleSubmitGuess(t *testing.T) {
	surveys := newFakeSurveyRepo()
	sv := closedSurvey(surveys)
	seedResponses(surveys, sv.ID, map[string]int{"dog": 5, "cat": 3, "bird": 2})

	svc := NewSampleService(surveys, 0, 0)
	ctx := context.Background()

	result, err := svc.SubmitGuess(ctx, "session-1", sv.ID, "dog")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, result.Outcome)
	assert.InDelta(t, 0.5, result.State.Score, 1e-9)

	// State carries over within the session.
	result, err = svc.SubmitGuess(ctx, "session-1", sv.ID, "cat")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeWinContinue, result.Outcome)
	assert.Len(t, result.State.Guesses, 2)
}

func TestSampleSessionsAreIsolated(t *testing.T) {
	surveys := newFakeSurveyRepo()
	sv := closedSurvey(surveys)
	seedResponses(surveys, sv.ID, map[string]int{"dog": 5, "cat": 5})

	svc := NewSampleService(surveys, 0, 0)
	ctx := context.Background()

	_, err := svc.SubmitGuess(ctx, "session-1", sv.ID, "dog")
	require.NoError(t, err)

	result, err := svc.SubmitGuess(ctx, "session-2", sv.ID, "dog")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, result.Outcome)
	assert.Len(t, result.State.Guesses, 1)
}

func TestSampleOneSurveyPerSession(t *testing.T) {
	surveys := newFakeSurveyRepo()
	first := closedSurvey(surveys)
	second := closedSurvey(surveys)
	seedResponses(surveys, first.ID, map[string]int{"dog": 5})
	seedResponses(surveys, second.ID, map[string]int{"cat": 5})

	svc := NewSampleService(surveys, 0, 0)
	ctx := context.Background()

	_, err := svc.SubmitGuess(ctx, "session-1", first.ID, "dog")
	require.NoError(t, err)

	_, err = svc.SubmitGuess(ctx, "session-1", second.ID, "cat")
	assert.ErrorIs(t, err, domain.ErrSampleExhausted)
}

func TestSampleRejectsEmptySession(t *testing.T) {
	surveys := newFakeSurveyRepo()
	sv := closedSurvey(surveys)

	svc := NewSampleService(surveys, 0, 0)

	_, err := svc.SubmitGuess(context.Background(), "", sv.ID, "dog")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSampleRequiresClosedSurvey(t *testing.T) {
	surveys := newFakeSurveyRepo()
	now := time.Now()
	sv := &domain.Survey{
		ID:       uuid.New(),
		Question: "Open survey",
		OpensAt:  now.Add(-time.Hour),
		ClosesAt: now.Add(time.Hour),
	}
	surveys.surveys[sv.ID] = sv

	svc := NewSampleService(surveys, 0, 0)

	_, err := svc.SubmitGuess(context.Background(), "session-1", sv.ID, "dog")
	assert.ErrorIs(t, err, domain.ErrSurveyStillOpen)
}

func TestSampleRejectionsNotStored(t *testing.T) {
	surveys := newFakeSurveyRepo()
	sv := closedSurvey(surveys)
	seedResponses(surveys, sv.ID, map[string]int{"dog": 5})

	svc := NewSampleService(surveys, 0, 0)
	ctx := context.Background()

	result, err := svc.SubmitGuess(ctx, "session-1", sv.ID, "fish")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIncorrectGuess, result.Outcome)

	// First accepted guess still sees a fresh game.
	result, err = svc.SubmitGuess(ctx, "session-1", sv.ID, "dog")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxGuesses-1, result.RemainingGuesses)
}
