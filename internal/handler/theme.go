// internal/handler/theme.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SurveyOS/SurveyOS-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ThemeHandler struct {
	themeService *service.ThemeService
}

func NewThemeHandler(themeService *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

func (h *ThemeHandler) CreateThemeHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateThemeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	theme, err := h.themeService.Create(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, theme)
}

func (h *ThemeHandler) GetThemeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid theme ID")
		return
	}

	theme, err := h.themeService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, theme)
}

func (h *ThemeHandler) UpdateThemeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid theme ID")
		return
	}

	var input service.UpdateThemeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	theme, err := h.themeService.Update(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, theme)
}

// GetThemeHistoryHandler returns all snapshots for a theme, oldest first.
func (h *ThemeHandler) GetThemeHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid theme ID")
		return
	}

	history, err := h.themeService.History(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, history)
}
