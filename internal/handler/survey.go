package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/plurality-game/plurality/internal/survey"
)

type SurveyHandler struct {
	service survey.Service
}

func NewSurveyHandler(service survey.Service) *SurveyHandler {
	return &SurveyHandler{service: service}
}

type CreateSurveyRequest struct {
	Question string    `json:"question" validate:"required,max=500"`
	OpensAt  time.Time `json:"opens_at" validate:"required"`
	ClosesAt time.Time `json:"closes_at" validate:"required,gtfield=OpensAt"`
}

// HandleCreateSurvey creates a new daily survey
func (h *SurveyHandler) HandleCreateSurvey(w http.ResponseWriter, r *http.Request) {
	var req CreateSurveyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create survey"); err != nil {
		return
	}

	sv, err := h.service.CreateSurvey(r.Context(), req.Question, req.OpensAt, req.ClosesAt)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateSurveyFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, sv)
}

// HandleGetSurvey returns the survey by id, or the current survey when no id is given
func (h *SurveyHandler) HandleGetSurvey(w http.ResponseWriter, r *http.Request) {
	idStr := GetOptionalQueryParam(r, "id", "")
	if idStr == "" {
		sv, err := h.service.GetCurrentSurvey(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSurveyFailed, err)
			return
		}
		if sv == nil {
			http.Error(w, ErrMsgSurveyNotFoundError, http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, sv)
		return
	}

	surveyID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidSurveyID, http.StatusBadRequest)
		return
	}

	sv, err := h.service.GetSurvey(r.Context(), surveyID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSurveyFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, sv)
}

type SubmitResponseRequest struct {
	SurveyID string `json:"survey_id" validate:"required,uuid"`
	UserID   string `json:"user_id" validate:"required,max=128"`
	Text     string `json:"text" validate:"required,max=200"`
}

// HandleSubmitResponse records a user's answer to the open survey
func (h *SurveyHandler) HandleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	var req SubmitResponseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit response"); err != nil {
		return
	}

	surveyID, err := uuid.Parse(req.SurveyID)
	if err != nil {
		http.Error(w, ErrMsgInvalidSurveyID, http.StatusBadRequest)
		return
	}

	if err := h.service.SubmitResponse(r.Context(), surveyID, req.UserID, req.Text); err != nil {
		respondServiceError(w, r, ErrMsgSubmitResponseFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgResponseRecorded})
}

// HandleGetResults returns the ranked vote tallies for a closed survey
func (h *SurveyHandler) HandleGetResults(w http.ResponseWriter, r *http.Request) {
	idStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}
	surveyID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidSurveyID, http.StatusBadRequest)
		return
	}

	results, err := h.service.GetResults(r.Context(), surveyID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetResultsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}
