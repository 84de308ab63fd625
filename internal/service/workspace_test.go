package service_test

import (
	"context"
	"testing"

	"github.com/SurveyOS/SurveyOS-api/internal/config"
	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/mocks"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/SurveyOS/SurveyOS-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newWorkspaceService(wsRepo *mocks.MockWorkspaceRepositoryIface, userRepo *mocks.MockUserRepositoryIface, companyRepo *mocks.MockCompanyRepositoryIface) *service.WorkspaceService {
	return service.NewWorkspaceService(wsRepo, userRepo, companyRepo, nil, &config.Config{})
}

func TestWorkspaceCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	creatorID := uuid.New()

	t.Run("creates workspace with the creator as admin seat", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		companyRepo.EXPECT().
			FindByID(gomock.Any(), companyID).
			Return(&model.Company{ID: companyID}, nil)
		userRepo.EXPECT().
			FindByID(gomock.Any(), creatorID).
			Return(&model.User{ID: creatorID}, nil)
		wsRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, workspace *model.Workspace) error {
				assert.Equal(t, companyID, workspace.CompanyID)
				assert.Equal(t, model.Members{{UserID: creatorID, Role: model.RoleAdmin}}, workspace.Users)
				return nil
			})

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		workspace, err := svc.Create(context.Background(), service.CreateWorkspaceInput{
			Name:      "Research",
			CompanyID: companyID,
			UserID:    creatorID,
			Role:      model.RoleAdmin,
		})

		assert.NoError(t, err)
		assert.NotNil(t, workspace)
	})

	t.Run("honors a non-admin role for the initial seat", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		companyRepo.EXPECT().
			FindByID(gomock.Any(), companyID).
			Return(&model.Company{ID: companyID}, nil)
		userRepo.EXPECT().
			FindByID(gomock.Any(), creatorID).
			Return(&model.User{ID: creatorID}, nil)
		wsRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, workspace *model.Workspace) error {
				seat, ok := workspace.Users.Get(creatorID)
				assert.True(t, ok)
				assert.Equal(t, model.RoleMember, seat.Role)
				return nil
			})

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		workspace, err := svc.Create(context.Background(), service.CreateWorkspaceInput{
			Name:      "Research",
			CompanyID: companyID,
			UserID:    creatorID,
			Role:      model.RoleMember,
		})

		assert.NoError(t, err)
		assert.NotNil(t, workspace)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		_, err := svc.Create(context.Background(), service.CreateWorkspaceInput{
			Name:      "Research",
			CompanyID: companyID,
			UserID:    creatorID,
			Role:      "owner",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("fails when the company does not exist", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		companyRepo.EXPECT().
			FindByID(gomock.Any(), companyID).
			Return(nil, domain.ErrCompanyNotFound)

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		_, err := svc.Create(context.Background(), service.CreateWorkspaceInput{
			Name:      "Research",
			CompanyID: companyID,
			UserID:    creatorID,
			Role:      model.RoleAdmin,
		})

		assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})
}

func TestWorkspaceUpdateMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspaceID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	// Current seats: alice admin, bob member.
	current := &model.Workspace{
		ID:   workspaceID,
		Name: "Research",
		Users: model.Members{
			{UserID: alice, Role: model.RoleAdmin},
			{UserID: bob, Role: model.RoleMember},
		},
	}

	t.Run("reconciles added, changed and removed seats", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		// New seats: alice stays admin, bob promoted to creator, carol added,
		// nobody keeps bob's old entry.
		newMembers := []model.Member{
			{UserID: alice, Role: model.RoleAdmin},
			{UserID: bob, Role: model.RoleCreator},
			{UserID: carol, Role: model.RoleMember},
		}

		wsRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(current, nil)
		userRepo.EXPECT().
			FindByID(gomock.Any(), carol).
			Return(&model.User{ID: carol, Name: "Carol"}, nil)

		wsRepo.EXPECT().
			UpdateMembers(gomock.Any(), workspaceID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, members model.Members, unlink []uuid.UUID, link []model.Member) (*model.Workspace, error) {
				assert.Len(t, members, 3)
				assert.Empty(t, unlink)
				// carol is brand new, bob's role changed; both get a fresh
				// reciprocal entry.
				assert.ElementsMatch(t, []model.Member{
					{UserID: carol, Role: model.RoleMember},
					{UserID: bob, Role: model.RoleCreator},
				}, link)
				return &model.Workspace{ID: workspaceID, Name: "Research", Users: members}, nil
			})

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		updated, err := svc.UpdateMembers(context.Background(), workspaceID, newMembers)

		assert.NoError(t, err)
		seat, ok := updated.Users.Get(bob)
		assert.True(t, ok)
		assert.Equal(t, model.RoleCreator, seat.Role)
	})

	t.Run("removed seats are unlinked from their users", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		newMembers := []model.Member{
			{UserID: alice, Role: model.RoleAdmin},
		}

		wsRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(current, nil)
		wsRepo.EXPECT().
			UpdateMembers(gomock.Any(), workspaceID, gomock.Any(), []uuid.UUID{bob}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, members model.Members, _ []uuid.UUID, link []model.Member) (*model.Workspace, error) {
				assert.Empty(t, link)
				return &model.Workspace{ID: workspaceID, Users: members}, nil
			})

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		updated, err := svc.UpdateMembers(context.Background(), workspaceID, newMembers)

		assert.NoError(t, err)
		_, ok := updated.Users.Get(bob)
		assert.False(t, ok)
	})

	t.Run("rejects an empty member list", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		_, err := svc.UpdateMembers(context.Background(), workspaceID, nil)

		assert.ErrorIs(t, err, domain.ErrNoWorkspaceMembers)
	})

	t.Run("rejects duplicate users in the new list", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		_, err := svc.UpdateMembers(context.Background(), workspaceID, []model.Member{
			{UserID: alice, Role: model.RoleAdmin},
			{UserID: alice, Role: model.RoleMember},
		})

		assert.ErrorIs(t, err, domain.ErrDuplicateWorkspaceMember)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		_, err := svc.UpdateMembers(context.Background(), workspaceID, []model.Member{
			{UserID: alice, Role: "owner"},
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("fails when an added user does not exist", func(t *testing.T) {
		wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		wsRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(current, nil)
		userRepo.EXPECT().
			FindByID(gomock.Any(), carol).
			Return(nil, domain.ErrUserNotFound)

		svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

		_, err := svc.UpdateMembers(context.Background(), workspaceID, []model.Member{
			{UserID: alice, Role: model.RoleAdmin},
			{UserID: carol, Role: model.RoleMember},
		})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestWorkspaceDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspaceID := uuid.New()

	wsRepo := mocks.NewMockWorkspaceRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

	wsRepo.EXPECT().Delete(gomock.Any(), workspaceID).Return(nil)

	svc := newWorkspaceService(wsRepo, userRepo, companyRepo)

	assert.NoError(t, svc.Delete(context.Background(), workspaceID))
}
