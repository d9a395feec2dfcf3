package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/event"
	"github.com/plurality-game/plurality/internal/logger"
	"github.com/plurality-game/plurality/internal/repository"
	"github.com/plurality-game/plurality/internal/tally"
)

// Service defines the interface for gameplay operations
type Service interface {
	// SubmitGuess applies one guess for a player against a closed survey.
	SubmitGuess(ctx context.Context, surveyID uuid.UUID, userID, raw string) (*domain.GuessResult, error)
	// GetGame returns the player's current game view, a fresh Active view
	// when no guess has been made yet.
	GetGame(ctx context.Context, surveyID uuid.UUID, userID string) (*domain.GuessResult, error)
}

type service struct {
	games    repository.Game
	surveys  repository.Survey
	eventBus event.Bus
}

// NewService creates a new gameplay service
func NewService(games repository.Game, surveys repository.Survey, eventBus event.Bus) Service {
	return &service{
		games:    games,
		surveys:  surveys,
		eventBus: eventBus,
	}
}

// SubmitGuess loads the player's state and the survey's tally snapshot,
// applies the pure guess transition and persists accepted results.
//
// Storage failures are surfaced wrapped in domain.ErrStorageFailure: the
// service fails closed rather than treating a broken load as a fresh game.
func (s *service) SubmitGuess(ctx context.Context, surveyID uuid.UUID, userID, raw string) (*domain.GuessResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSubmitGuessCalled, "survey_id", surveyID, "user_id", userID)

	tallies, err := s.loadTallies(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		state, err := s.loadGameState(ctx, surveyID, userID)
		if err != nil {
			return nil, err
		}

		result := applyGuess(*state, tallies, raw)
		log.Info(LogMsgGuessResolved,
			"survey_id", surveyID,
			"user_id", userID,
			"outcome", result.Outcome,
			"score", result.State.Score)

		if !result.Outcome.Accepted() {
			return &result, nil
		}

		err = s.games.SaveGameState(ctx, &result.State)
		if err == nil {
			s.publishGuessEvents(ctx, state, &result)
			return &result, nil
		}
		if errors.Is(err, domain.ErrConflict) && attempt < saveRetries {
			log.Warn(LogMsgConflictOnSave, "survey_id", surveyID, "user_id", userID, "attempt", attempt+1)
			continue
		}
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, ErrContextSaveGame, err)
	}
}

// GetGame returns the player's current game view without mutating anything.
func (s *service) GetGame(ctx context.Context, surveyID uuid.UUID, userID string) (*domain.GuessResult, error) {
	if _, err := s.getGuessableSurvey(ctx, surveyID); err != nil {
		return nil, err
	}

	state, err := s.loadGameState(ctx, surveyID, userID)
	if err != nil {
		return nil, err
	}

	return &domain.GuessResult{
		Outcome:          "",
		State:            *state,
		Status:           state.Status(),
		RemainingGuesses: RemainingGuesses(state.Guesses),
	}, nil
}

// loadTallies builds the read-through aggregation snapshot for a survey in
// its guessing phase.
func (s *service) loadTallies(ctx context.Context, surveyID uuid.UUID) (domain.TallySet, error) {
	if _, err := s.getGuessableSurvey(ctx, surveyID); err != nil {
		return domain.TallySet{}, err
	}

	responses, err := s.surveys.ListResponses(ctx, surveyID)
	if err != nil {
		return domain.TallySet{}, fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, ErrContextLoadResponses, err)
	}
	return tally.Aggregate(responses), nil
}

func (s *service) getGuessableSurvey(ctx context.Context, surveyID uuid.UUID) (*domain.Survey, error) {
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
	return survey, nil
}

func (s *service) loadGameState(ctx context.Context, surveyID uuid.UUID, userID string) (*domain.GameState, error) {
	state, err := s.games.GetGameState(ctx, surveyID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, ErrContextLoadGame, err)
	}
	if state == nil {
		state = &domain.GameState{SurveyID: surveyID, UserID: userID}
	}
	return state, nil
}

// publishGuessEvents emits the accepted-guess event, plus won/completed
// events when this transition crossed those lines. Publish failures are
// logged, never propagated to the player.
func (s *service) publishGuessEvents(ctx context.Context, before *domain.GameState, result *domain.GuessResult) {
	if s.eventBus == nil {
		return
	}
	st := result.State

	s.publish(ctx, event.Event{
		Version: event.SchemaVersion,
		Type:    event.GameGuessAccepted,
		Payload: event.GuessAcceptedPayloadV1{
			SurveyID: st.SurveyID.String(),
			UserID:   st.UserID,
			AnswerID: result.Matched.AnswerID,
			Votes:    result.Matched.Votes,
			Score:    st.Score,
		},
	})

	if st.Win && !before.Win {
		s.publish(ctx, event.Event{
			Version: event.SchemaVersion,
			Type:    event.GameWon,
			Payload: event.GameWonPayloadV1{
				SurveyID: st.SurveyID.String(),
				UserID:   st.UserID,
				Score:    st.Score,
				Guesses:  len(st.Guesses),
			},
		})
	}

	if result.Status.Terminal() {
		s.publish(ctx, event.Event{
			Version: event.SchemaVersion,
			Type:    event.GameCompleted,
			Payload: event.GameCompletedPayloadV1{
				SurveyID: st.SurveyID.String(),
				UserID:   st.UserID,
				Status:   string(result.Status),
			},
		})
	}
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if err := s.eventBus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedPublishEvent, "event_type", e.Type, "error", err)
	}
}
