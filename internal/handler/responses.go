package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service error and writes the mapped user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing success messages
const (
	MsgResponseRecorded = "Response recorded"
)

// User-facing error messages for service errors
const (
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestBody  = "Invalid request. Please check your inputs."
	ErrMsgServerError         = "Server error occurred. Please try again."
	ErrMsgStorageUnavailable  = "Game state is temporarily unavailable. Please try again."
	ErrMsgConflictError       = "Your game changed while submitting. Please retry."
	ErrMsgSurveyNotFoundError = "Survey not found"
	ErrMsgSurveyNotOpenError  = "This survey is not open for responses yet"
	ErrMsgSurveyClosedError   = "This survey is no longer accepting responses"
	ErrMsgStillOpenError      = "Results are hidden until the survey closes"
	ErrMsgAlreadyVotedError   = "You have already responded to this survey"
	ErrMsgEmptyGuessError     = "Please enter a guess"
	ErrMsgSampleUsedError     = "Your free sample game has been played"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrSurveyNotFound):
		return http.StatusNotFound, ErrMsgSurveyNotFoundError
	case errors.Is(err, domain.ErrSurveyNotOpen):
		return http.StatusBadRequest, ErrMsgSurveyNotOpenError
	case errors.Is(err, domain.ErrSurveyClosed):
		return http.StatusBadRequest, ErrMsgSurveyClosedError
	case errors.Is(err, domain.ErrSurveyStillOpen):
		return http.StatusBadRequest, ErrMsgStillOpenError
	case errors.Is(err, domain.ErrAlreadyVoted):
		return http.StatusConflict, ErrMsgAlreadyVotedError
	case errors.Is(err, domain.ErrEmptyGuess):
		return http.StatusBadRequest, ErrMsgEmptyGuessError
	case errors.Is(err, domain.ErrSampleExhausted):
		return http.StatusForbidden, ErrMsgSampleUsedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestBody
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrMsgConflictError
	case errors.Is(err, domain.ErrStorageFailure):
		return http.StatusServiceUnavailable, ErrMsgStorageUnavailable
	default:
		return http.StatusInternalServerError, ErrMsgServerError
	}
}
