// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SurveyOS/SurveyOS-api/internal/auth"
	"github.com/SurveyOS/SurveyOS-api/internal/config"
	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/SurveyOS/SurveyOS-api/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService is the identity store facade: user creation, credential and
// Google login, and token refresh. Company and workspace membership never
// mutate users through this service.
type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		config:         config,
		validate:       validator.New(),
	}
}

type CreateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthOutput pairs a user with a freshly issued token.
type AuthOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Create registers a new user with a hashed password and returns a token.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Workspaces:   model.WorkspaceMemberships{},
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns the user with a token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{User: user, Token: token}, nil
}

type GoogleLoginInput struct {
	GoogleID string `json:"google_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

// GoogleLogin signs a user in via their Google identity: match on google id
// first, then link an existing account by email, then create a fresh one.
func (s *UserService) GoogleLogin(ctx context.Context, input GoogleLoginInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByGoogleID(ctx, input.GoogleID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if user == nil {
		user, err = s.repo.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}

		if user != nil {
			// Link the Google identity to the existing account. Only the
			// identity columns are written; membership state stays untouched.
			avatar := ""
			if user.Avatar == "" {
				avatar = input.Avatar
			}
			if err := s.repo.LinkGoogleAccount(ctx, user.ID, input.GoogleID, avatar); err != nil {
				return nil, fmt.Errorf("linking google account: %w", err)
			}
			user.GoogleID = input.GoogleID
			user.Provider = model.ProviderGoogle
			if avatar != "" {
				user.Avatar = avatar
			}
		} else {
			user = &model.User{
				Name:       input.Name,
				Email:      input.Email,
				GoogleID:   input.GoogleID,
				Avatar:     input.Avatar,
				Provider:   model.ProviderGoogle,
				Workspaces: model.WorkspaceMemberships{},
			}
			if err := s.repo.Create(ctx, user); err != nil {
				return nil, fmt.Errorf("creating user: %w", err)
			}
		}
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{User: user, Token: token}, nil
}

func (s *UserService) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// RefreshToken issues a new token for an already-authenticated user.
func (s *UserService) RefreshToken(ctx context.Context, userID uuid.UUID) (*AuthOutput, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{User: user, Token: token}, nil
}
