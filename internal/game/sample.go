package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/plurality-game/plurality/internal/concurrency"
	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/logger"
	"github.com/plurality-game/plurality/internal/repository"
	"github.com/plurality-game/plurality/internal/tally"
)

// SampleService runs the anonymous "one free game" path. It reuses the same
// guess transition and score code as authenticated play. The only difference
// is the store: game states live in an expiring in-memory cache keyed by an
// opaque session ID, and a session gets exactly one game.
type SampleService interface {
	SubmitGuess(ctx context.Context, sessionID string, surveyID uuid.UUID, raw string) (*domain.GuessResult, error)
}

type sampleService struct {
	surveys repository.Survey
	store   *expirable.LRU[string, *domain.GameState]
	// locks serializes guesses per session; the cache has no version guard.
	locks *concurrency.LockManager
}

// NewSampleService creates a sample-game service holding at most size
// concurrent anonymous games, each expiring ttl after its last update.
func NewSampleService(surveys repository.Survey, size int, ttl time.Duration) SampleService {
	if size <= 0 {
		size = DefaultSampleStoreSize
	}
	if ttl <= 0 {
		ttl = DefaultSampleTTL
	}
	return &sampleService{
		surveys: surveys,
		store:   expirable.NewLRU[string, *domain.GameState](size, nil, ttl),
		locks:   concurrency.NewLockManager(),
	}
}

// SubmitGuess applies one guess for an anonymous session. A session that
// already has a game on a different survey is rejected with
// domain.ErrSampleExhausted.
func (s *sampleService) SubmitGuess(ctx context.Context, sessionID string, surveyID uuid.UUID, raw string) (*domain.GuessResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSampleGuessCalled, "survey_id", surveyID)

	if sessionID == "" {
		return nil, domain.ErrInvalidInput
	}

	survey, err := s.surveys.GetSurvey(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, ErrContextLoadSurvey, err)
	}
	if survey == nil {
		return nil, domain.ErrSurveyNotFound
	}
	if !survey.GuessingOpen(time.Now()) {
		return nil, domain.ErrSurveyStillOpen
	}

	responses, err := s.surveys.ListResponses(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, ErrContextLoadResponses, err)
	}
	tallies := tally.Aggregate(responses)

	lock := s.locks.GetLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	state, ok := s.store.Get(sessionID)
	if !ok {
		state = &domain.GameState{SurveyID: surveyID, UserID: sessionID}
	} else if state.SurveyID != surveyID {
		return nil, domain.ErrSampleExhausted
	}

	result := applyGuess(*state, tallies, raw)
	if result.Outcome.Accepted() {
		saved := result.State
		s.store.Add(sessionID, &saved)
	}
	return &result, nil
}
