// internal/handler/workspace.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/SurveyOS/SurveyOS-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService *service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) CreateWorkspaceHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateWorkspaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	workspace, err := h.workspaceService.Create(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, workspace)
}

func (h *WorkspaceHandler) GetWorkspaceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workspace ID")
		return
	}

	workspace, err := h.workspaceService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, workspace)
}

type updateMembersRequest struct {
	Members []model.Member `json:"members"`
}

// UpdateMembersHandler replaces the workspace member list. The service
// reconciles user-side membership entries for seats added, removed, or
// moved to a different role.
func (h *WorkspaceHandler) UpdateMembersHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workspace ID")
		return
	}

	var req updateMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	workspace, err := h.workspaceService.UpdateMembers(r.Context(), id, req.Members)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, workspace)
}

func (h *WorkspaceHandler) DeleteWorkspaceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workspace ID")
		return
	}

	if err := h.workspaceService.Delete(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Workspace deleted"})
}
