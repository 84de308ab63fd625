package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/middleware"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithDomainError maps domain errors onto HTTP status codes. Anything
// unrecognized is a persistence failure and surfaces as a bare 500 so internal
// detail never leaks to the caller.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrWorkspaceNotFound),
		errors.Is(err, domain.ErrSurveyNotFound),
		errors.Is(err, domain.ErrSurveyTemplateNotFound),
		errors.Is(err, domain.ErrQuestionNotFound),
		errors.Is(err, domain.ErrThemeNotFound),
		errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUserAlreadyInCompany),
		errors.Is(err, domain.ErrUserAlreadyInThisCompany),
		errors.Is(err, domain.ErrNotCompanyMember),
		errors.Is(err, domain.ErrDuplicateWorkspaceMember),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrVersionConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidSurveyType),
		errors.Is(err, domain.ErrInvalidThemeType),
		errors.Is(err, domain.ErrNoWorkspaceMembers),
		errors.Is(err, domain.ErrPasswordTooWeak):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// authedUserID extracts the authenticated user id placed in the request
// context by the auth middleware.
func authedUserID(r *http.Request) (uuid.UUID, bool) {
	raw, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
