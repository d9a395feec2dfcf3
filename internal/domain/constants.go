package domain

// Gameplay constants. These are fixed product configuration, not per-game
// values: every game shares the same guess budget and win threshold.
const (
	// MaxGuesses is the number of accepted guesses a player gets per survey.
	// Incorrect guesses do not consume the budget.
	MaxGuesses = 6

	// WinThresholdPercent is the percentage of total votes a player's correct
	// guesses must cover to win.
	WinThresholdPercent = 80
)

// WinThreshold is the win threshold expressed as a score fraction in [0,1].
func WinThreshold() float64 {
	return float64(WinThresholdPercent) / 100
}
