package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/plurality-game/plurality/internal/domain"
)

// Survey defines the interface for survey and response persistence
type Survey interface {
	CreateSurvey(ctx context.Context, survey *domain.Survey) error
	GetSurvey(ctx context.Context, id uuid.UUID) (*domain.Survey, error)
	// GetLatestSurvey returns the most recently created survey, or nil when none exist.
	GetLatestSurvey(ctx context.Context) (*domain.Survey, error)

	// RecordResponse stores a response. Returns domain.ErrAlreadyVoted when the
	// user has already responded to the survey.
	RecordResponse(ctx context.Context, response *domain.SurveyResponse) error
	ListResponses(ctx context.Context, surveyID uuid.UUID) ([]domain.SurveyResponse, error)
	HasResponded(ctx context.Context, surveyID uuid.UUID, userID string) (bool, error)
}
