package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidSurveyID   = "Invalid survey id"

	// Survey operation error messages
	ErrMsgCreateSurveyFailed   = "Failed to create survey"
	ErrMsgGetSurveyFailed      = "Failed to get survey"
	ErrMsgSubmitResponseFailed = "Failed to submit response"
	ErrMsgGetResultsFailed     = "Failed to get survey results"

	// Game operation error messages
	ErrMsgSubmitGuessFailed = "Failed to submit guess"
	ErrMsgGetGameFailed     = "Failed to get game"

	// Stats error messages
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
)
