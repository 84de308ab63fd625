// internal/service/workspace.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SurveyOS/SurveyOS-api/internal/config"
	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/email"
	"github.com/SurveyOS/SurveyOS-api/internal/email/mailer"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/SurveyOS/SurveyOS-api/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// WorkspaceService owns workspace membership. Every seat in a workspace has a
// reciprocal {workspace, role} entry on the user holding it, and the two must
// agree at all times.
type WorkspaceService struct {
	repo         repository.WorkspaceRepositoryIface
	userRepo     repository.UserRepositoryIface
	companyRepo  repository.CompanyRepositoryIface
	emailService *email.Service
	config       *config.Config
	validate     *validator.Validate
}

func NewWorkspaceService(
	repo repository.WorkspaceRepositoryIface,
	userRepo repository.UserRepositoryIface,
	companyRepo repository.CompanyRepositoryIface,
	emailService *email.Service,
	config *config.Config,
) *WorkspaceService {
	return &WorkspaceService{
		repo:         repo,
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		emailService: emailService,
		config:       config,
		validate:     validator.New(),
	}
}

type CreateWorkspaceInput struct {
	Name      string     `json:"name" validate:"required"`
	CompanyID uuid.UUID  `json:"company_id" validate:"required"`
	UserID    uuid.UUID  `json:"user_id" validate:"required"`
	Role      model.Role `json:"role" validate:"required"`
}

// Create creates a workspace under the given company with the creating user
// holding the requested seat role, and appends the reciprocal entry to that
// user's workspaces list.
func (s *WorkspaceService) Create(ctx context.Context, input CreateWorkspaceInput) (*model.Workspace, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !model.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, input.Role)
	}

	if _, err := s.companyRepo.FindByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	workspace := &model.Workspace{
		Name:      input.Name,
		CompanyID: input.CompanyID,
		Users:     model.Members{{UserID: user.ID, Role: input.Role}},
	}

	if err := s.repo.Create(ctx, workspace); err != nil {
		return nil, err
	}

	return workspace, nil
}

// UpdateMembers replaces the workspace's member list with newMembers. The
// symmetric difference against the current list is keyed by user id: removed
// users lose their reciprocal entry, added users gain one, and role changes
// swap the stale entry for a fresh one.
func (s *WorkspaceService) UpdateMembers(ctx context.Context, workspaceID uuid.UUID, newMembers []model.Member) (*model.Workspace, error) {
	if len(newMembers) == 0 {
		return nil, domain.ErrNoWorkspaceMembers
	}

	seen := make(map[uuid.UUID]bool, len(newMembers))
	for _, seat := range newMembers {
		if !model.ValidRole(seat.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, seat.Role)
		}
		if seen[seat.UserID] {
			return nil, domain.ErrDuplicateWorkspaceMember
		}
		seen[seat.UserID] = true
	}

	workspace, err := s.repo.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	added, changed, removed := diffMembers(workspace.Users, newMembers)

	invited := make([]*model.User, 0, len(added))
	for _, seat := range added {
		user, err := s.userRepo.FindByID(ctx, seat.UserID)
		if err != nil {
			return nil, err
		}
		invited = append(invited, user)
	}

	link := make([]model.Member, 0, len(added)+len(changed))
	link = append(link, added...)
	link = append(link, changed...)

	updated, err := s.repo.UpdateMembers(ctx, workspaceID, newMembers, removed, link)
	if err != nil {
		return nil, err
	}

	for i, seat := range added {
		s.sendInvite(ctx, invited[i], updated, seat.Role)
	}

	return updated, nil
}

// Delete removes the workspace and strips the reciprocal entry from every
// member. Workspace deletion is hard, unlike surveys and questions.
func (s *WorkspaceService) Delete(ctx context.Context, workspaceID uuid.UUID) error {
	return s.repo.Delete(ctx, workspaceID)
}

func (s *WorkspaceService) Get(ctx context.Context, id uuid.UUID) (*model.Workspace, error) {
	return s.repo.FindByID(ctx, id)
}

// diffMembers splits the transition from old to new into added seats, seats
// whose role changed, and removed user ids. Identity is the user id alone; a
// role change is not a removal plus addition.
func diffMembers(old, new model.Members) (added, changed []model.Member, removed []uuid.UUID) {
	oldByUser := make(map[uuid.UUID]model.Member, len(old))
	for _, seat := range old {
		oldByUser[seat.UserID] = seat
	}

	newByUser := make(map[uuid.UUID]bool, len(new))
	for _, seat := range new {
		newByUser[seat.UserID] = true
		prev, ok := oldByUser[seat.UserID]
		switch {
		case !ok:
			added = append(added, seat)
		case prev.Role != seat.Role:
			changed = append(changed, seat)
		}
	}

	for _, seat := range old {
		if !newByUser[seat.UserID] {
			removed = append(removed, seat.UserID)
		}
	}

	return added, changed, removed
}

func (s *WorkspaceService) sendInvite(ctx context.Context, user *model.User, workspace *model.Workspace, role model.Role) {
	if s.emailService == nil {
		return
	}

	data := mailer.WorkspaceInviteTemplateData{
		Name:          user.Name,
		WorkspaceName: workspace.Name,
		Role:          string(role),
		LoginLink:     s.config.BaseURL + "/login",
	}

	if err := mailer.SendWorkspaceInviteEmail(s.emailService, user.Email, data); err != nil {
		slog.WarnContext(ctx, "failed to send workspace invite email", "error", err, "user_id", user.ID)
	}
}
