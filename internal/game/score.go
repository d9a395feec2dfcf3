package game

import "github.com/plurality-game/plurality/internal/domain"

// Points sums the vote counts captured by the recorded guesses.
func Points(guesses []domain.Guess) int {
	total := 0
	for _, g := range guesses {
		total += g.Votes
	}
	return total
}

// Score derives the fraction of total votes covered by the given points.
// A zero-vote aggregation degrades to 0, never NaN.
func Score(points, totalVotes int) float64 {
	if totalVotes <= 0 {
		return 0
	}
	return float64(points) / float64(totalVotes)
}

// IsWin reports whether a score meets or exceeds the win threshold.
func IsWin(score float64) bool {
	return score >= domain.WinThreshold()
}

// RemainingGuesses returns the unused guess budget, floored at 0.
func RemainingGuesses(guesses []domain.Guess) int {
	remaining := domain.MaxGuesses - len(guesses)
	if remaining < 0 {
		return 0
	}
	return remaining
}
