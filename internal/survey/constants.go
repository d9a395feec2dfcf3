package survey

// Log messages
const (
	LogMsgSurveyCreated      = "Survey created"
	LogMsgResponseRecorded   = "Survey response recorded"
	LogMsgFailedPublishEvent = "Failed to publish response recorded event"
)

// Error context strings
const (
	ErrContextCreateSurvey   = "failed to create survey"
	ErrContextGetSurvey      = "failed to get survey"
	ErrContextRecordResponse = "failed to record response"
	ErrContextListResponses  = "failed to list responses"
)
