package domain

import (
	"time"

	"github.com/google/uuid"
)

// Survey is the daily prompt players respond to during its open window and
// guess about after it closes.
type Survey struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	OpensAt   time.Time `json:"opens_at"`
	ClosesAt  time.Time `json:"closes_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsOpen reports whether the survey accepts responses at the given time.
func (s Survey) IsOpen(now time.Time) bool {
	return !now.Before(s.OpensAt) && now.Before(s.ClosesAt)
}

// GuessingOpen reports whether the survey is in its guessing phase,
// which starts once the response window has closed.
func (s Survey) GuessingOpen(now time.Time) bool {
	return !now.Before(s.ClosesAt)
}

// SurveyResponse is a single free-text submission to a survey.
// One response per user per survey, enforced by storage.
type SurveyResponse struct {
	SurveyID  uuid.UUID `json:"survey_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// SurveyResults holds the ranked vote aggregation for a closed survey.
type SurveyResults struct {
	Survey     Survey      `json:"survey"`
	Tallies    []VoteTally `json:"tallies"`
	TotalVotes int         `json:"total_votes"`
}

// LeaderboardEntry is one row of the win-count leaderboard.
type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Wins   int    `json:"wins"`
}
