package survey

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/event"
	"github.com/plurality-game/plurality/internal/logger"
	"github.com/plurality-game/plurality/internal/repository"
	"github.com/plurality-game/plurality/internal/tally"
)

// Service defines the interface for survey lifecycle operations
type Service interface {
	CreateSurvey(ctx context.Context, question string, opensAt, closesAt time.Time) (*domain.Survey, error)
	GetSurvey(ctx context.Context, id uuid.UUID) (*domain.Survey, error)
	// GetCurrentSurvey returns the most recent survey, or nil when none exist.
	GetCurrentSurvey(ctx context.Context) (*domain.Survey, error)
	// SubmitResponse records one vote during the survey's open window.
	SubmitResponse(ctx context.Context, surveyID uuid.UUID, userID, text string) error
	// GetResults returns the ranked tallies for a survey whose window has closed.
	GetResults(ctx context.Context, surveyID uuid.UUID) (*domain.SurveyResults, error)
}

type service struct {
	repo     repository.Survey
	eventBus event.Bus
}

// NewService creates a new survey service
func NewService(repo repository.Survey, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		eventBus: eventBus,
	}
}

// CreateSurvey validates and stores a new survey
func (s *service) CreateSurvey(ctx context.Context, question string, opensAt, closesAt time.Time) (*domain.Survey, error) {
	log := logger.FromContext(ctx)

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question must not be empty", domain.ErrInvalidInput)
	}
	if !closesAt.After(opensAt) {
		return nil, fmt.Errorf("%w: close time must be after open time", domain.ErrInvalidInput)
	}

	survey := &domain.Survey{
		ID:        uuid.New(),
		Question:  question,
		OpensAt:   opensAt.UTC(),
		ClosesAt:  closesAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateSurvey(ctx, survey); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateSurvey, err)
	}

	log.Info(LogMsgSurveyCreated, "survey_id", survey.ID, "closes_at", survey.ClosesAt)
	return survey, nil
}

// GetSurvey retrieves a survey by ID
func (s *service) GetSurvey(ctx context.Context, id uuid.UUID) (*domain.Survey, error) {
	survey, err := s.repo.GetSurvey(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetSurvey, err)
	}
	if survey == nil {
		return nil, domain.ErrSurveyNotFound
	}
	return survey, nil
}

// GetCurrentSurvey retrieves the most recently created survey
func (s *service) GetCurrentSurvey(ctx context.Context) (*domain.Survey, error) {
	survey, err := s.repo.GetLatestSurvey(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetSurvey, err)
	}
	return survey, nil
}

// SubmitResponse records one response for a user while the window is open
func (s *service) SubmitResponse(ctx context.Context, surveyID uuid.UUID, userID, text string) error {
	log := logger.FromContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: response text must not be empty", domain.ErrInvalidInput)
	}
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	survey, err := s.GetSurvey(ctx, surveyID)
	if err != nil {
		return err
	}

	now := time.Now()
	if now.Before(survey.OpensAt) {
		return domain.ErrSurveyNotOpen
	}
	if !survey.IsOpen(now) {
		return domain.ErrSurveyClosed
	}

	response := &domain.SurveyResponse{
		SurveyID:  surveyID,
		UserID:    userID,
		Text:      text,
		CreatedAt: now.UTC(),
	}
	if err := s.repo.RecordResponse(ctx, response); err != nil {
		return fmt.Errorf("%s: %w", ErrContextRecordResponse, err)
	}

	log.Info(LogMsgResponseRecorded, "survey_id", surveyID)
	s.publishResponseRecorded(ctx, surveyID, userID)
	return nil
}

// GetResults aggregates the responses of a closed survey into ranked tallies
func (s *service) GetResults(ctx context.Context, surveyID uuid.UUID) (*domain.SurveyResults, error) {
	survey, err := s.GetSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if !survey.GuessingOpen(time.Now()) {
		return nil, domain.ErrSurveyStillOpen
	}

	responses, err := s.repo.ListResponses(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListResponses, err)
	}

	set := tally.Aggregate(responses)
	return &domain.SurveyResults{
		Survey:     *survey,
		Tallies:    tally.SortByVotes(set.Tallies),
		TotalVotes: set.TotalVotes,
	}, nil
}

func (s *service) publishResponseRecorded(ctx context.Context, surveyID uuid.UUID, userID string) {
	if s.eventBus == nil {
		return
	}
	err := s.eventBus.Publish(ctx, event.Event{
		Version: event.SchemaVersion,
		Type:    event.SurveyResponseRecorded,
		Payload: event.SurveyResponseRecordedPayloadV1{
			SurveyID: surveyID.String(),
			UserID:   userID,
		},
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedPublishEvent, "error", err)
	}
}
