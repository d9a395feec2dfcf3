package survey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/event"
)

// fakeRepo implements repository.Survey for testing
type fakeRepo struct {
	surveys   map[uuid.UUID]*domain.Survey
	responses map[uuid.UUID][]domain.SurveyResponse

	createErr error
	getErr    error
	listErr   error
	recordErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		surveys:   make(map[uuid.UUID]*domain.Survey),
		responses: make(map[uuid.UUID][]domain.SurveyResponse),
	}
}

func (f *fakeRepo) CreateSurvey(ctx context.Context, survey *domain.Survey) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.surveys[survey.ID] = survey
	return nil
}

func (f *fakeRepo) GetSurvey(ctx context.Context, id uuid.UUID) (*domain.Survey, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.surveys[id], nil
}

func (f *fakeRepo) GetLatestSurvey(ctx context.Context) (*domain.Survey, error) {
	var latest *domain.Survey
	for _, s := range f.surveys {
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	return latest, nil
}

func (f *fakeRepo) RecordResponse(ctx context.Context, response *domain.SurveyResponse) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	for _, r := range f.responses[response.SurveyID] {
		if r.UserID == response.UserID {
			return domain.ErrAlreadyVoted
		}
	}
	f.responses[response.SurveyID] = append(f.responses[response.SurveyID], *response)
	return nil
}

func (f *fakeRepo) ListResponses(ctx context.Context, surveyID uuid.UUID) ([]domain.SurveyResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.responses[surveyID], nil
}

func (f *fakeRepo) HasResponded(ctx context.Context, surveyID uuid.UUID, userID string) (bool, error) {
	for _, r := range f.responses[surveyID] {
		if r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type recordingBus struct {
	events []event.Event
}

func (b *recordingBus) Publish(ctx context.Context, e event.Event) error {
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) Subscribe(eventType event.Type, handler event.Handler) {}

func openSurvey(repo *fakeRepo) *domain.Survey {
	now := time.Now()
	s := &domain.Survey{
		ID:        uuid.New(),
		Question:  "What's for breakfast?",
		OpensAt:   now.Add(-time.Hour),
		ClosesAt:  now.Add(time.Hour),
		CreatedAt: now.Add(-time.Hour),
	}
	repo.surveys[s.ID] = s
	return s
}

func closedSurvey(repo *fakeRepo) *domain.Survey {
	now := time.Now()
	s := &domain.Survey{
		ID:        uuid.New(),
		Question:  "What's for breakfast?",
		OpensAt:   now.Add(-48 * time.Hour),
		ClosesAt:  now.Add(-24 * time.Hour),
		CreatedAt: now.Add(-48 * time.Hour),
	}
	repo.surveys[s.ID] = s
	return s
}

func TestCreateSurvey(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingBus{})

	opens := time.Now().Add(time.Hour)
	closes := opens.Add(24 * time.Hour)

	sv, err := svc.CreateSurvey(context.Background(), "  What's the best pet?  ", opens, closes)
	require.NoError(t, err)
	assert.Equal(t, "What's the best pet?", sv.Question, "question is trimmed")
	assert.NotEqual(t, uuid.Nil, sv.ID)
	assert.Contains(t, repo.surveys, sv.ID)
}

func TestCreateSurveyValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), &recordingBus{})
	now := time.Now()

	tests := []struct {
		name     string
		question string
		opensAt  time.Time
		closesAt time.Time
	}{
		{"empty question", "", now, now.Add(time.Hour)},
		{"whitespace question", "   ", now, now.Add(time.Hour)},
		{"closes before opens", "ok?", now.Add(time.Hour), now},
		{"closes equals opens", "ok?", now, now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSurvey(context.Background(), tt.question, tt.opensAt, tt.closesAt)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGetSurveyNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), &recordingBus{})

	_, err := svc.GetSurvey(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrSurveyNotFound)
}

func TestGetCurrentSurveyPicksLatest(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingBus{})

	_ = closedSurvey(repo)
	latest := openSurvey(repo)

	got, err := svc.GetCurrentSurvey(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, latest.ID, got.ID)
}

func TestGetCurrentSurveyEmpty(t *testing.T) {
	svc := NewService(newFakeRepo(), &recordingBus{})

	got, err := svc.GetCurrentSurvey(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSubmitResponse(t *testing.T) {
	repo := newFakeRepo()
	bus := &recordingBus{}
	svc := NewService(repo, bus)
	sv := openSurvey(repo)

	err := svc.SubmitResponse(context.Background(), sv.ID, "user-1", "  Pancakes ")
	require.NoError(t, err)

	require.Len(t, repo.responses[sv.ID], 1)
	assert.Equal(t, "Pancakes", repo.responses[sv.ID][0].Text, "text is trimmed but not normalized")
	require.Len(t, bus.events, 1)
	assert.Equal(t, event.SurveyResponseRecorded, bus.events[0].Type)
}

func TestSubmitResponseValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingBus{})
	sv := openSurvey(repo)

	err := svc.SubmitResponse(context.Background(), sv.ID, "user-1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.SubmitResponse(context.Background(), sv.ID, "", "Pancakes")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitResponseWindowEnforced(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingBus{})

	now := time.Now()
	future := &domain.Survey{
		ID:       uuid.New(),
		Question: "Not yet",
		OpensAt:  now.Add(time.Hour),
		ClosesAt: now.Add(2 * time.Hour),
	}
	repo.surveys[future.ID] = future

	err := svc.SubmitResponse(context.Background(), future.ID, "user-1", "Pancakes")
	assert.ErrorIs(t, err, domain.ErrSurveyNotOpen)

	past := closedSurvey(repo)
	err = svc.SubmitResponse(context.Background(), past.ID, "user-1", "Pancakes")
	assert.ErrorIs(t, err, domain.ErrSurveyClosed)
}

func TestSubmitResponseDuplicateVote(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingBus{})
	sv := openSurvey(repo)

	ctx := context.Background()
	require.NoError(t, svc.SubmitResponse(ctx, sv.ID, "user-1", "Pancakes"))

	err := svc.SubmitResponse(ctx, sv.ID, "user-1", "Waffles")
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestGetResultsGatedUntilClose(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingBus{})
	sv := openSurvey(repo)

	_, err := svc.GetResults(context.Background(), sv.ID)
	assert.ErrorIs(t, err, domain.ErrSurveyStillOpen)
}

func TestGetResultsRankedByVotes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingBus{})
	sv := closedSurvey(repo)

	repo.responses[sv.ID] = []domain.SurveyResponse{
		{SurveyID: sv.ID, UserID: "u1", Text: "cat"},
		{SurveyID: sv.ID, UserID: "u2", Text: "Dog"},
		{SurveyID: sv.ID, UserID: "u3", Text: "dog"},
		{SurveyID: sv.ID, UserID: "u4", Text: "DOG"},
		{SurveyID: sv.ID, UserID: "u5", Text: "cat"},
	}

	results, err := svc.GetResults(context.Background(), sv.ID)
	require.NoError(t, err)

	assert.Equal(t, sv.ID, results.Survey.ID)
	assert.Equal(t, 5, results.TotalVotes)
	require.Len(t, results.Tallies, 2)
	assert.Equal(t, "dog", results.Tallies[0].AnswerID)
	assert.Equal(t, 3, results.Tallies[0].Votes)
	assert.Equal(t, 1, results.Tallies[0].Ranking)
	assert.Equal(t, "cat", results.Tallies[1].AnswerID)
	assert.Equal(t, 2, results.Tallies[1].Ranking)
}

func TestGetResultsEmptySurvey(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingBus{})
	sv := closedSurvey(repo)

	results, err := svc.GetResults(context.Background(), sv.ID)
	require.NoError(t, err)
	assert.Empty(t, results.Tallies)
	assert.Zero(t, results.TotalVotes)
}

func TestGetResultsStorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection reset")
	svc := NewService(repo, &recordingBus{})
	sv := closedSurvey(repo)

	_, err := svc.GetResults(context.Background(), sv.ID)
	assert.Error(t, err)
}
