// internal/service/company.go
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
	"github.com/lib/pq"
)

// CompanyService owns company membership. A user belongs to at most one
// company, and the company's member lists are the source of truth for the
// company pointer carried on each user.
type CompanyService struct {
	repo         repository.CompanyRepositoryIface
	userRepo     repository.UserRepositoryIface
	emailService *email.Service
	config       *config.Config
	validate     *validator.Validate
}

func NewCompanyService(
	repo repository.CompanyRepositoryIface,
	userRepo repository.UserRepositoryIface,
	emailService *email.Service,
	config *config.Config,
) *CompanyService {
	return &CompanyService{
		repo:         repo,
		userRepo:     userRepo,
		emailService: emailService,
		config:       config,
		validate:     validator.New(),
	}
}

type CreateCompanyInput struct {
	Name    string    `json:"name" validate:"required"`
	AdminID uuid.UUID `json:"admin_id" validate:"required"`
}

// Create creates a company with the given user as sole admin and member, and
// sets that user's company pointer. The admin must exist and must not already
// belong to a company.
func (s *CompanyService) Create(ctx context.Context, input CreateCompanyInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	admin, err := s.userRepo.FindByID(ctx, input.AdminID)
	if err != nil {
		return nil, err
	}

	if admin.CompanyID != nil {
		return nil, domain.ErrUserAlreadyInCompany
	}

	company := &model.Company{
		Name:       input.Name,
		Admins:     pq.StringArray{admin.ID.String()},
		Users:      pq.StringArray{admin.ID.String()},
		Workspaces: pq.StringArray{},
	}

	if err := s.repo.Create(ctx, company, admin.ID); err != nil {
		return nil, err
	}

	return company, nil
}

type AddUserInput struct {
	CompanyID uuid.UUID  `json:"company_id" validate:"required"`
	UserID    uuid.UUID  `json:"user_id" validate:"required"`
	Role      model.Role `json:"role" validate:"required"`
}

// AddUser adds a user to the company's member list, to the admin list as well
// when the role is admin, and sets the user's company pointer. The
// at-most-one-company rule is checked before any mutation.
func (s *CompanyService) AddUser(ctx context.Context, input AddUserInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !model.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, input.Role)
	}

	company, err := s.repo.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if company.HasUser(user.ID) {
		return nil, domain.ErrUserAlreadyInThisCompany
	}

	if user.CompanyID != nil {
		return nil, domain.ErrUserAlreadyInCompany
	}

	updated, err := s.repo.AddUser(ctx, company.ID, user.ID, input.Role)
	if err != nil {
		return nil, err
	}

	s.sendInvite(ctx, user, updated, input.Role)

	return updated, nil
}

// RemoveUser removes the user from both member and admin lists and clears the
// user's company pointer. Removing the last admin leaves the company without
// admins; nobody is promoted.
func (s *CompanyService) RemoveUser(ctx context.Context, companyID, userID uuid.UUID) (*model.Company, error) {
	return s.repo.RemoveUser(ctx, companyID, userID)
}

func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return s.repo.FindByID(ctx, id)
}

// sendInvite notifies the added user by email. Delivery is best-effort and
// never fails the membership change.
func (s *CompanyService) sendInvite(ctx context.Context, user *model.User, company *model.Company, role model.Role) {
	if s.emailService == nil {
		return
	}

	data := mailer.CompanyInviteTemplateData{
		Name:        user.Name,
		CompanyName: company.Name,
		Role:        string(role),
		LoginLink:   s.config.BaseURL + "/login",
	}

	if err := mailer.SendCompanyInviteEmail(s.emailService, user.Email, data); err != nil {
		slog.WarnContext(ctx, "failed to send company invite email", "error", err, "user_id", user.ID)
	}
}
