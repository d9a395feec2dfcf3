package game

import (
	"time"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/match"
	"github.com/plurality-game/plurality/internal/tally"
)

// applyGuess is the pure submit-guess transition: given a consistent game
// state snapshot, the current tally set and a raw guess, it returns the
// resulting state and outcome. It performs no I/O; persistence of accepted
// results is the caller's responsibility.
//
// Rejections (empty, game over, already guessed, incorrect) leave the state
// unchanged, and an incorrect guess never consumes the guess budget.
func applyGuess(state domain.GameState, tallies domain.TallySet, raw string) domain.GuessResult {
	result := domain.GuessResult{
		State:            state,
		Status:           state.Status(),
		RemainingGuesses: RemainingGuesses(state.Guesses),
	}

	normalized := match.Normalize(raw)
	if normalized == "" {
		result.Outcome = domain.OutcomeEmptyGuess
		return result
	}

	if state.Status().Terminal() {
		result.Outcome = domain.OutcomeGameOver
		return result
	}

	// A guess that resolves to an answer already on the board is an
	// idempotent rejection, checked with the same matching rule used for
	// the tallies themselves.
	for _, g := range state.Guesses {
		if match.Matches(normalized, g.AnswerID) {
			result.Outcome = domain.OutcomeAlreadyGuessed
			return result
		}
	}

	candidates := unguessed(tallies.Tallies, state.Guesses)
	matched, err := match.Match(raw, candidates)
	if err != nil {
		result.Outcome = domain.OutcomeEmptyGuess
		return result
	}
	if matched == nil {
		result.Outcome = domain.OutcomeIncorrectGuess
		result.Hint = match.Closest(raw, candidates)
		return result
	}

	state.Guesses = append(state.Guesses, domain.Guess{
		AnswerID: matched.AnswerID,
		Votes:    matched.Votes,
	})
	state.TotalVotes = tallies.TotalVotes
	state.Score = Score(Points(state.Guesses), state.TotalVotes)
	// Win is monotonic: the score only accumulates, so re-deriving it each
	// transition can never flip a won game back.
	state.Win = state.Win || IsWin(state.Score)
	state.UpdatedAt = time.Now().UTC()

	result.State = state
	result.Status = state.Status()
	result.RemainingGuesses = RemainingGuesses(state.Guesses)
	result.Matched = matched

	switch {
	case len(state.Guesses) >= domain.MaxGuesses && state.Win:
		result.Outcome = domain.OutcomeWinComplete
	case len(state.Guesses) >= domain.MaxGuesses:
		result.Outcome = domain.OutcomeLossComplete
	case state.Win:
		result.Outcome = domain.OutcomeWinContinue
	default:
		result.Outcome = domain.OutcomeAccepted
	}
	return result
}

// unguessed returns the tallies not yet captured by a guess, sorted by votes
// descending with ties in aggregation order. This is the deterministic
// candidate order the matcher's first-hit-wins contract depends on.
func unguessed(tallies []domain.VoteTally, guesses []domain.Guess) []domain.VoteTally {
	taken := make(map[string]struct{}, len(guesses))
	for _, g := range guesses {
		taken[g.AnswerID] = struct{}{}
	}

	remaining := make([]domain.VoteTally, 0, len(tallies))
	for _, t := range tallies {
		if _, ok := taken[t.AnswerID]; ok {
			continue
		}
		remaining = append(remaining, t)
	}
	return tally.SortByVotes(remaining)
}
