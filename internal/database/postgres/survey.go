package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/repository"
)

// SurveyRepository implements the survey repository for PostgreSQL
type SurveyRepository struct {
	db *pgxpool.Pool
}

// NewSurveyRepository creates a new SurveyRepository
func NewSurveyRepository(db *pgxpool.Pool) repository.Survey {
	return &SurveyRepository{db: db}
}

// CreateSurvey inserts a new survey record
func (r *SurveyRepository) CreateSurvey(ctx context.Context, survey *domain.Survey) error {
	query := `
		INSERT INTO surveys (id, question, opens_at, closes_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		survey.ID, survey.Question, survey.OpensAt, survey.ClosesAt, survey.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert survey: %w", err)
	}
	return nil
}

// GetSurvey retrieves a survey by ID, nil when it does not exist
func (r *SurveyRepository) GetSurvey(ctx context.Context, id uuid.UUID) (*domain.Survey, error) {
	query := `
		SELECT id, question, opens_at, closes_at, created_at
		FROM surveys
		WHERE id = $1
	`
	var s domain.Survey
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Question, &s.OpensAt, &s.ClosesAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}
	return &s, nil
}

// GetLatestSurvey retrieves the most recently created survey
func (r *SurveyRepository) GetLatestSurvey(ctx context.Context) (*domain.Survey, error) {
	query := `
		SELECT id, question, opens_at, closes_at, created_at
		FROM surveys
		ORDER BY created_at DESC
		LIMIT 1
	`
	var s domain.Survey
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID, &s.Question, &s.OpensAt, &s.ClosesAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest survey: %w", err)
	}
	return &s, nil
}

// RecordResponse inserts a response, mapping the one-per-user constraint
// violation to domain.ErrAlreadyVoted
func (r *SurveyRepository) RecordResponse(ctx context.Context, response *domain.SurveyResponse) error {
	query := `
		INSERT INTO survey_responses (survey_id, user_id, response_text, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query,
		response.SurveyID, response.UserID, response.Text, response.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert response: %w", err)
	}
	return nil
}

// ListResponses retrieves all responses for a survey in submission order
func (r *SurveyRepository) ListResponses(ctx context.Context, surveyID uuid.UUID) ([]domain.SurveyResponse, error) {
	query := `
		SELECT survey_id, user_id, response_text, created_at
		FROM survey_responses
		WHERE survey_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	var responses []domain.SurveyResponse
	for rows.Next() {
		var resp domain.SurveyResponse
		if err := rows.Scan(&resp.SurveyID, &resp.UserID, &resp.Text, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read responses: %w", err)
	}
	return responses, nil
}

// HasResponded reports whether the user already responded to the survey
func (r *SurveyRepository) HasResponded(ctx context.Context, surveyID uuid.UUID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM survey_responses WHERE survey_id = $1 AND user_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, surveyID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check response: %w", err)
	}
	return exists, nil
}
