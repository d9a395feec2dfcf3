package domain

import (
	"time"

	"github.com/google/uuid"
)

// VoteTally is the aggregated count of one distinct normalized response text.
// AnswerID is the normalized text itself and doubles as the tally's identity
// within a survey. Ranking is a dense rank by descending votes: ties share a
// rank and the next rank continues sequentially after the tie group.
type VoteTally struct {
	AnswerID string `json:"answer_id"`
	Votes    int    `json:"votes"`
	Ranking  int    `json:"ranking,omitempty"`
}

// TallySet is a snapshot of a survey's aggregation. The slice is in
// first-seen aggregation order; callers that need display or matching order
// sort by votes descending. Sum of Votes over Tallies equals TotalVotes.
type TallySet struct {
	Tallies    []VoteTally `json:"tallies"`
	TotalVotes int         `json:"total_votes"`
}

// Guess is a single accepted guess, recording the tally it matched.
// Guesses are stored in submission order.
type Guess struct {
	AnswerID string `json:"answer_id"`
	Votes    int    `json:"votes"`
}

// GameStatus classifies a game's position in the guess lifecycle.
type GameStatus string

const (
	// GameStatusActive means guessing is allowed.
	GameStatusActive GameStatus = "active"
	// GameStatusWonContinuing means the win threshold is met with guesses remaining.
	GameStatusWonContinuing GameStatus = "won_continuing"
	// GameStatusWonComplete means the game was won and the guess budget is exhausted.
	GameStatusWonComplete GameStatus = "won_complete"
	// GameStatusLostComplete means the guess budget ran out below the threshold.
	GameStatusLostComplete GameStatus = "lost_complete"
)

// Terminal reports whether no further guesses are accepted.
func (s GameStatus) Terminal() bool {
	return s == GameStatusWonComplete || s == GameStatusLostComplete
}

// GameState tracks one player's guesses, score and win status for one survey.
// It is a plain value: transitions produce a new state, persistence is the
// storage layer's concern. Version carries the optimistic-concurrency token
// assigned by storage (0 for a state that has never been persisted).
type GameState struct {
	SurveyID   uuid.UUID `json:"survey_id"`
	UserID     string    `json:"user_id"`
	Guesses    []Guess   `json:"guesses"`
	Score      float64   `json:"score"`
	Win        bool      `json:"win"`
	TotalVotes int       `json:"total_votes"`
	Version    int       `json:"-"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Status derives the lifecycle state from the recorded guesses and win flag.
func (g GameState) Status() GameStatus {
	exhausted := len(g.Guesses) >= MaxGuesses
	switch {
	case g.Win && exhausted:
		return GameStatusWonComplete
	case g.Win:
		return GameStatusWonContinuing
	case exhausted:
		return GameStatusLostComplete
	default:
		return GameStatusActive
	}
}

// GuessOutcome describes the result of a single guess submission.
type GuessOutcome string

const (
	// OutcomeEmptyGuess rejects a guess that is empty after trimming.
	OutcomeEmptyGuess GuessOutcome = "empty_guess"
	// OutcomeGameOver rejects a submission against a terminal game.
	OutcomeGameOver GuessOutcome = "game_over"
	// OutcomeAlreadyGuessed rejects a guess matching an already-recorded answer.
	OutcomeAlreadyGuessed GuessOutcome = "already_guessed"
	// OutcomeIncorrectGuess rejects a guess that matched no unguessed tally.
	// It does not consume the guess budget.
	OutcomeIncorrectGuess GuessOutcome = "incorrect_guess"
	// OutcomeAccepted records a correct guess with the game still active.
	OutcomeAccepted GuessOutcome = "accepted"
	// OutcomeWinContinue records a correct guess that met the threshold
	// with guesses remaining.
	OutcomeWinContinue GuessOutcome = "win_continue"
	// OutcomeWinComplete records the final budgeted guess with the threshold met.
	OutcomeWinComplete GuessOutcome = "win_complete"
	// OutcomeLossComplete records the final budgeted guess below the threshold.
	OutcomeLossComplete GuessOutcome = "loss_complete"
)

// Accepted reports whether the outcome recorded a new guess,
// meaning the state changed and must be persisted.
func (o GuessOutcome) Accepted() bool {
	switch o {
	case OutcomeAccepted, OutcomeWinContinue, OutcomeWinComplete, OutcomeLossComplete:
		return true
	}
	return false
}

// GuessResult is the presentation-facing result of a guess submission:
// the (possibly unchanged) game state plus the outcome descriptor.
type GuessResult struct {
	Outcome          GuessOutcome `json:"outcome"`
	State            GameState    `json:"state"`
	Status           GameStatus   `json:"status"`
	RemainingGuesses int          `json:"remaining_guesses"`
	// Matched is the tally the guess resolved to, set only on accepted outcomes.
	Matched *VoteTally `json:"matched,omitempty"`
	// Hint carries a near-miss suggestion on incorrect guesses, when one exists.
	Hint string `json:"hint,omitempty"`
}
