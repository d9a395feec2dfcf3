package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/google/uuid"

	"github.com/plurality-game/plurality/internal/domain"
)

// testTallies is the canonical three-answer aggregation used across guess
// transition tests: dog 50, cat 30, bird 20 out of 100 votes.
func testTallies() domain.TallySet {
	return domain.TallySet{
		Tallies: []domain.VoteTally{
			{AnswerID: "dog", Votes: 50, Ranking: 1},
			{AnswerID: "cat", Votes: 30, Ranking: 2},
			{AnswerID: "bird", Votes: 20, Ranking: 3},
		},
		TotalVotes: 100,
	}
}

func newState() domain.GameState {
	return domain.GameState{SurveyID: uuid.New(), UserID: "player-1"}
}

func TestApplyGuessAccepted(t *testing.T) {
	result := applyGuess(newState(), testTallies(), "Dog")

	assert.Equal(t, domain.OutcomeAccepted, result.Outcome)
	assert.Equal(t, domain.GameStatusActive, result.Status)
	require.Len(t, result.State.Guesses, 1)
	assert.Equal(t, "dog", result.State.Guesses[0].AnswerID)
	assert.Equal(t, 50, result.State.Guesses[0].Votes)
	assert.InDelta(t, 0.5, result.State.Score, 1e-9)
	assert.False(t, result.State.Win)
	assert.Equal(t, domain.MaxGuesses-1, result.RemainingGuesses)
	require.NotNil(t, result.Matched)
	assert.Equal(t, "dog", result.Matched.AnswerID)
	assert.Equal(t, 100, result.State.TotalVotes)
	assert.False(t, result.State.UpdatedAt.IsZero())
}

func TestApplyGuessWinContinue(t *testing.T) {
	first := applyGuess(newState(), testTallies(), "dog")
	require.Equal(t, domain.OutcomeAccepted, first.Outcome)

	second := applyGuess(first.State, testTallies(), "cat")

	assert.Equal(t, domain.OutcomeWinContinue, second.Outcome)
	assert.Equal(t, domain.GameStatusWonContinuing, second.Status)
	assert.InDelta(t, 0.8, second.State.Score, 1e-9)
	assert.True(t, second.State.Win)
	assert.Equal(t, domain.MaxGuesses-2, second.RemainingGuesses)
}

func TestApplyGuessWinAllowsFurtherGuessing(t *testing.T) {
	first := applyGuess(newState(), testTallies(), "dog")
	second := applyGuess(first.State, testTallies(), "cat")
	require.True(t, second.State.Win)

	third := applyGuess(second.State, testTallies(), "bird")

	assert.Equal(t, domain.OutcomeWinContinue, third.Outcome)
	assert.InDelta(t, 1.0, third.State.Score, 1e-9)
	assert.True(t, third.State.Win, "win is monotonic")
}

func TestApplyGuessIncorrect(t *testing.T) {
	result := applyGuess(newState(), testTallies(), "fish")

	assert.Equal(t, domain.OutcomeIncorrectGuess, result.Outcome)
	assert.Empty(t, result.State.Guesses, "incorrect guess never consumes budget")
	assert.Equal(t, domain.MaxGuesses, result.RemainingGuesses)
	assert.Zero(t, result.State.Score)
	assert.Nil(t, result.Matched)
}

func TestApplyGuessIncorrectCarriesHint(t *testing.T) {
	result := applyGuess(newState(), testTallies(), "birb")

	assert.Equal(t, domain.OutcomeIncorrectGuess, result.Outcome)
	assert.Equal(t, "bird", result.Hint)
}

func TestApplyGuessEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		result := applyGuess(newState(), testTallies(), raw)
		assert.Equal(t, domain.OutcomeEmptyGuess, result.Outcome)
		assert.Empty(t, result.State.Guesses)
	}
}

func TestApplyGuessAlreadyGuessed(t *testing.T) {
	first := applyGuess(newState(), testTallies(), "dog")
	require.Equal(t, domain.OutcomeAccepted, first.Outcome)

	repeat := applyGuess(first.State, testTallies(), "DOG")

	assert.Equal(t, domain.OutcomeAlreadyGuessed, repeat.Outcome)
	assert.Len(t, repeat.State.Guesses, 1, "repeat is idempotent")
	assert.InDelta(t, first.State.Score, repeat.State.Score, 1e-9)
}

func TestApplyGuessBudgetExhaustion(t *testing.T) {
	// Six answers of ten votes each: six accepted guesses cover 60% and lose.
	var tallies domain.TallySet
	answers := []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}
	for _, a := range answers {
		tallies.Tallies = append(tallies.Tallies, domain.VoteTally{AnswerID: a, Votes: 10})
		tallies.TotalVotes += 10
	}

	state := newState()
	var result domain.GuessResult
	for i := 0; i < domain.MaxGuesses; i++ {
		result = applyGuess(state, tallies, answers[i])
		require.True(t, result.Outcome.Accepted(), "guess %d should be accepted", i+1)
		state = result.State
	}

	assert.Equal(t, domain.OutcomeLossComplete, result.Outcome)
	assert.Equal(t, domain.GameStatusLostComplete, result.Status)
	assert.InDelta(t, 0.6, state.Score, 1e-9)
	assert.Equal(t, 0, result.RemainingGuesses)

	// Seventh guess is rejected without touching the state.
	after := applyGuess(state, tallies, answers[6])
	assert.Equal(t, domain.OutcomeGameOver, after.Outcome)
	assert.Len(t, after.State.Guesses, domain.MaxGuesses)
}

func TestApplyGuessWinOnFinalGuess(t *testing.T) {
	// Five answers at 4 votes each, one at 80: capturing everything on the
	// sixth guess crosses the threshold exactly on budget exhaustion.
	tallies := domain.TallySet{
		Tallies: []domain.VoteTally{
			{AnswerID: "big", Votes: 80},
			{AnswerID: "a1", Votes: 4},
			{AnswerID: "a2", Votes: 4},
			{AnswerID: "a3", Votes: 4},
			{AnswerID: "a4", Votes: 4},
			{AnswerID: "a5", Votes: 4},
		},
		TotalVotes: 100,
	}

	state := newState()
	for _, g := range []string{"a1", "a2", "a3", "a4", "a5"} {
		result := applyGuess(state, tallies, g)
		require.True(t, result.Outcome.Accepted())
		state = result.State
	}
	require.False(t, state.Win)

	final := applyGuess(state, tallies, "big")

	assert.Equal(t, domain.OutcomeWinComplete, final.Outcome)
	assert.Equal(t, domain.GameStatusWonComplete, final.Status)
	assert.InDelta(t, 1.0, final.State.Score, 1e-9)
	assert.True(t, final.State.Win)
}

func TestApplyGuessScoreMonotonic(t *testing.T) {
	state := newState()
	prev := 0.0
	for _, g := range []string{"bird", "cat", "dog"} {
		result := applyGuess(state, testTallies(), g)
		require.True(t, result.Outcome.Accepted())
		assert.GreaterOrEqual(t, result.State.Score, prev)
		prev = result.State.Score
		state = result.State
	}
}

func TestApplyGuessZeroVoteSurvey(t *testing.T) {
	result := applyGuess(newState(), domain.TallySet{}, "dog")

	assert.Equal(t, domain.OutcomeIncorrectGuess, result.Outcome)
	assert.Zero(t, result.State.Score, "empty aggregation degrades to score 0")
}

func TestApplyGuessTokenMatchPrefersPopular(t *testing.T) {
	// "dog" as a token appears in both answers; the higher-vote answer wins
	// regardless of aggregation order.
	tallies := domain.TallySet{
		Tallies: []domain.VoteTally{
			{AnswerID: "dog park", Votes: 10},
			{AnswerID: "hot dog", Votes: 40},
		},
		TotalVotes: 50,
	}

	result := applyGuess(newState(), tallies, "dog")

	require.True(t, result.Outcome.Accepted())
	require.NotNil(t, result.Matched)
	assert.Equal(t, "hot dog", result.Matched.AnswerID)
}
