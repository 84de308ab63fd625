// internal/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/SurveyOS/SurveyOS-api/internal/service"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserHandler registers a new user and returns the user with a token.
func (h *UserHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Create(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "create user error", "error", err, "requestID", chimw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, output)
}
