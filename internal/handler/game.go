package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/plurality-game/plurality/internal/game"
)

type GameHandler struct {
	service   game.Service
	sampleSvc game.SampleService
}

func NewGameHandler(service game.Service, sampleSvc game.SampleService) *GameHandler {
	return &GameHandler{
		service:   service,
		sampleSvc: sampleSvc,
	}
}

type SubmitGuessRequest struct {
	SurveyID string `json:"survey_id" validate:"required,uuid"`
	UserID   string `json:"user_id" validate:"required,max=128"`
	Guess    string `json:"guess" validate:"max=200"`
}

// HandleSubmitGuess applies one guess against a closed survey's results
func (h *GameHandler) HandleSubmitGuess(w http.ResponseWriter, r *http.Request) {
	var req SubmitGuessRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit guess"); err != nil {
		return
	}

	surveyID, err := uuid.Parse(req.SurveyID)
	if err != nil {
		http.Error(w, ErrMsgInvalidSurveyID, http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitGuess(r.Context(), surveyID, req.UserID, req.Guess)
	if err != nil {
		respondServiceError(w, r, ErrMsgSubmitGuessFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleGetGame returns the caller's game state for a survey
func (h *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	idStr, ok := GetQueryParam(r, w, "survey_id")
	if !ok {
		return
	}
	surveyID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidSurveyID, http.StatusBadRequest)
		return
	}

	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	result, err := h.service.GetGame(r.Context(), surveyID, userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetGameFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type SampleGuessRequest struct {
	SessionID string `json:"session_id" validate:"required,max=128"`
	SurveyID  string `json:"survey_id" validate:"required,uuid"`
	Guess     string `json:"guess" validate:"max=200"`
}

// HandleSampleGuess plays a guess in the anonymous try-before-you-register game
func (h *GameHandler) HandleSampleGuess(w http.ResponseWriter, r *http.Request) {
	var req SampleGuessRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sample guess"); err != nil {
		return
	}

	surveyID, err := uuid.Parse(req.SurveyID)
	if err != nil {
		http.Error(w, ErrMsgInvalidSurveyID, http.StatusBadRequest)
		return
	}

	result, err := h.sampleSvc.SubmitGuess(r.Context(), req.SessionID, surveyID, req.Guess)
	if err != nil {
		respondServiceError(w, r, ErrMsgSubmitGuessFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
