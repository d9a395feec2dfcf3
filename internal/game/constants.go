package game

import "time"

// Sample game store defaults
const (
	// DefaultSampleStoreSize bounds the number of concurrent anonymous games.
	DefaultSampleStoreSize = 4096
	// DefaultSampleTTL is how long an anonymous game survives between guesses.
	DefaultSampleTTL = 24 * time.Hour
)

// Log messages
const (
	LogMsgSubmitGuessCalled  = "SubmitGuess called"
	LogMsgGuessResolved      = "Guess resolved"
	LogMsgConflictOnSave     = "Game state save conflict, retrying"
	LogMsgSampleGuessCalled  = "Sample guess called"
	LogMsgFailedPublishEvent = "Failed to publish event"
)

// Error context strings used when wrapping storage errors
const (
	ErrContextLoadSurvey    = "failed to load survey"
	ErrContextLoadResponses = "failed to load responses"
	ErrContextLoadGame      = "failed to load game state"
	ErrContextSaveGame      = "failed to save game state"
)

// saveRetries is how many times a conflicted save is retried before the
// conflict is surfaced to the caller.
const saveRetries = 2
