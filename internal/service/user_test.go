package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SurveyOS/SurveyOS-api/internal/auth"
	"github.com/SurveyOS/SurveyOS-api/internal/config"
	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/mocks"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/SurveyOS/SurveyOS-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newUserService(repo *mocks.MockUserRepositoryIface) *service.UserService {
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return service.NewUserService(repo, hasher, tokens, &config.Config{})
}

func TestUserCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("registers a user and returns a token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "new@example.com").
			Return(nil, domain.ErrUserNotFound)
		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				assert.Equal(t, "new@example.com", user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "hunter2-is-long", user.PasswordHash)
				user.ID = uuid.New()
				return nil
			})

		svc := newUserService(userRepo)

		output, err := svc.Create(context.Background(), service.CreateUserInput{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "hunter2-is-long",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, "new@example.com", output.User.Email)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "taken@example.com").
			Return(&model.User{Email: "taken@example.com"}, nil)

		svc := newUserService(userRepo)

		_, err := svc.Create(context.Background(), service.CreateUserInput{
			Name:     "Dup",
			Email:    "taken@example.com",
			Password: "hunter2-is-long",
		})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		svc := newUserService(userRepo)

		_, err := svc.Create(context.Background(), service.CreateUserInput{
			Name:     "Short",
			Email:    "short@example.com",
			Password: "short",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("correct-password")
	assert.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        "login@example.com",
		PasswordHash: hash,
	}

	t.Run("valid credentials produce a token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), user.Email).
			Return(user, nil)

		svc := newUserService(userRepo)

		output, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct-password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, output.Token)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), user.Email).
			Return(user, nil)

		svc := newUserService(userRepo)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like a bad password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.ErrUserNotFound)

		svc := newUserService(userRepo)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever-long",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("google-only accounts cannot password-login", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		googleUser := &model.User{
			ID:       uuid.New(),
			Email:    "google@example.com",
			GoogleID: "g-123",
			Provider: model.ProviderGoogle,
		}

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), googleUser.Email).
			Return(googleUser, nil)

		svc := newUserService(userRepo)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    googleUser.Email,
			Password: "any-password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestUserGoogleLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := service.GoogleLoginInput{
		GoogleID: "g-456",
		Email:    "sso@example.com",
		Name:     "SSO User",
		Avatar:   "https://example.com/a.png",
	}

	t.Run("returning google user signs straight in", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		existing := &model.User{
			ID:       uuid.New(),
			Email:    input.Email,
			GoogleID: input.GoogleID,
			Provider: model.ProviderGoogle,
		}

		userRepo.EXPECT().
			FindByGoogleID(gomock.Any(), input.GoogleID).
			Return(existing, nil)

		svc := newUserService(userRepo)

		output, err := svc.GoogleLogin(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, output.User.ID)
		assert.NotEmpty(t, output.Token)
	})

	t.Run("existing email account gets the google identity linked", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		existing := &model.User{
			ID:    uuid.New(),
			Email: input.Email,
			Name:  "Password User",
		}

		userRepo.EXPECT().
			FindByGoogleID(gomock.Any(), input.GoogleID).
			Return(nil, domain.ErrUserNotFound)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), input.Email).
			Return(existing, nil)
		userRepo.EXPECT().
			LinkGoogleAccount(gomock.Any(), existing.ID, input.GoogleID, input.Avatar).
			Return(nil)

		svc := newUserService(userRepo)

		output, err := svc.GoogleLogin(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, output.User.ID)
		assert.Equal(t, input.GoogleID, output.User.GoogleID)
		assert.Equal(t, model.ProviderGoogle, output.User.Provider)
	})

	t.Run("linking keeps an existing avatar", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		existing := &model.User{
			ID:     uuid.New(),
			Email:  input.Email,
			Name:   "Password User",
			Avatar: "https://example.com/custom.png",
		}

		userRepo.EXPECT().
			FindByGoogleID(gomock.Any(), input.GoogleID).
			Return(nil, domain.ErrUserNotFound)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), input.Email).
			Return(existing, nil)
		userRepo.EXPECT().
			LinkGoogleAccount(gomock.Any(), existing.ID, input.GoogleID, "").
			Return(nil)

		svc := newUserService(userRepo)

		output, err := svc.GoogleLogin(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, "https://example.com/custom.png", output.User.Avatar)
	})

	t.Run("unknown identity creates a fresh account", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByGoogleID(gomock.Any(), input.GoogleID).
			Return(nil, domain.ErrUserNotFound)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), input.Email).
			Return(nil, domain.ErrUserNotFound)
		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				assert.Empty(t, user.PasswordHash)
				assert.Equal(t, input.GoogleID, user.GoogleID)
				user.ID = uuid.New()
				return nil
			})

		svc := newUserService(userRepo)

		output, err := svc.GoogleLogin(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, input.Email, output.User.Email)
	})
}

func TestUserRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &model.User{ID: userID, Email: "refresh@example.com"}

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)

	svc := newUserService(userRepo)

	output, err := svc.RefreshToken(context.Background(), userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, output.Token)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	claims, err := tokens.Validate(output.Token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}
