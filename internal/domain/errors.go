package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Survey errors
	ErrMsgSurveyNotFound  = "survey not found"
	ErrMsgSurveyNotOpen   = "survey is not open for responses"
	ErrMsgSurveyClosed    = "survey response window has closed"
	ErrMsgSurveyStillOpen = "survey is still collecting responses"
	ErrMsgAlreadyVoted    = "user has already responded to this survey"

	// Guess errors
	ErrMsgEmptyGuess = "guess must be a non-empty string"

	// Sample game errors
	ErrMsgSampleExhausted = "sample game already played for this session"

	// Storage errors
	ErrMsgStorageFailure = "storage failure"
	ErrMsgConflict       = "concurrent update conflict"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Survey errors
	ErrSurveyNotFound  = errors.New(ErrMsgSurveyNotFound)
	ErrSurveyNotOpen   = errors.New(ErrMsgSurveyNotOpen)
	ErrSurveyClosed    = errors.New(ErrMsgSurveyClosed)
	ErrSurveyStillOpen = errors.New(ErrMsgSurveyStillOpen)
	ErrAlreadyVoted    = errors.New(ErrMsgAlreadyVoted)

	// Guess errors
	ErrEmptyGuess = errors.New(ErrMsgEmptyGuess)

	// Sample game errors
	ErrSampleExhausted = errors.New(ErrMsgSampleExhausted)

	// Storage errors. ErrStorageFailure marks load/save failures so callers
	// can fail closed instead of treating a broken load as a fresh game.
	ErrStorageFailure = errors.New(ErrMsgStorageFailure)
	ErrConflict       = errors.New(ErrMsgConflict)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
