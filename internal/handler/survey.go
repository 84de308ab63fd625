// internal/handler/survey.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SurveyOS/SurveyOS-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SurveyHandler struct {
	surveyService *service.SurveyService
}

func NewSurveyHandler(surveyService *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

func (h *SurveyHandler) CreateSurveyHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateSurveyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	survey, err := h.surveyService.Create(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, survey)
}

func (h *SurveyHandler) GetSurveyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid survey ID")
		return
	}

	survey, err := h.surveyService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, survey)
}

func (h *SurveyHandler) UpdateSurveyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid survey ID")
		return
	}

	var input service.UpdateSurveyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	survey, err := h.surveyService.Update(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, survey)
}

type addQuestionRequest struct {
	QuestionID uuid.UUID `json:"question_id"`
}

func (h *SurveyHandler) AddQuestionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid survey ID")
		return
	}

	var req addQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.QuestionID == uuid.Nil {
		respondWithError(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	survey, err := h.surveyService.AddQuestion(r.Context(), id, req.QuestionID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, survey)
}

// GetSurveyHistoryHandler returns all snapshots for a survey, oldest first.
func (h *SurveyHandler) GetSurveyHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid survey ID")
		return
	}

	history, err := h.surveyService.History(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, history)
}

func (h *SurveyHandler) DeleteSurveyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid survey ID")
		return
	}

	if err := h.surveyService.Delete(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Survey deleted"})
}

func (h *SurveyHandler) CreateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	template, err := h.surveyService.CreateTemplate(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, template)
}

func (h *SurveyHandler) DeleteTemplateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if err := h.surveyService.DeleteTemplate(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Template deleted"})
}
