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
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCompanyCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	admin := &model.User{
		ID:    adminID,
		Name:  "Ada",
		Email: "ada@example.com",
	}

	t.Run("creates company with founder as sole admin and member", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByID(gomock.Any(), adminID).
			Return(admin, nil)

		companyRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), adminID).
			DoAndReturn(func(_ context.Context, company *model.Company, _ uuid.UUID) error {
				assert.Equal(t, "Acme", company.Name)
				assert.Equal(t, pq.StringArray{adminID.String()}, company.Admins)
				assert.Equal(t, pq.StringArray{adminID.String()}, company.Users)
				assert.Empty(t, company.Workspaces)
				return nil
			})

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		company, err := svc.Create(context.Background(), service.CreateCompanyInput{
			Name:    "Acme",
			AdminID: adminID,
		})

		assert.NoError(t, err)
		assert.NotNil(t, company)
	})

	t.Run("rejects founder who already belongs to a company", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		otherCompany := uuid.New()
		taken := &model.User{ID: adminID, CompanyID: &otherCompany}

		userRepo.EXPECT().
			FindByID(gomock.Any(), adminID).
			Return(taken, nil)

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		_, err := svc.Create(context.Background(), service.CreateCompanyInput{
			Name:    "Acme",
			AdminID: adminID,
		})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyInCompany)
	})

	t.Run("fails when the founder does not exist", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByID(gomock.Any(), adminID).
			Return(nil, domain.ErrUserNotFound)

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		_, err := svc.Create(context.Background(), service.CreateCompanyInput{
			Name:    "Acme",
			AdminID: adminID,
		})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		_, err := svc.Create(context.Background(), service.CreateCompanyInput{
			AdminID: adminID,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCompanyAddUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	adminID := uuid.New()
	userID := uuid.New()

	company := &model.Company{
		ID:     companyID,
		Name:   "Acme",
		Admins: pq.StringArray{adminID.String()},
		Users:  pq.StringArray{adminID.String()},
	}

	t.Run("adds a free user", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		user := &model.User{ID: userID, Name: "Bo", Email: "bo@example.com"}

		updated := &model.Company{
			ID:     companyID,
			Name:   "Acme",
			Admins: pq.StringArray{adminID.String()},
			Users:  pq.StringArray{adminID.String(), userID.String()},
		}

		companyRepo.EXPECT().FindByID(gomock.Any(), companyID).Return(company, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
		companyRepo.EXPECT().
			AddUser(gomock.Any(), companyID, userID, model.RoleMember).
			Return(updated, nil)

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		got, err := svc.AddUser(context.Background(), service.AddUserInput{
			CompanyID: companyID,
			UserID:    userID,
			Role:      model.RoleMember,
		})

		assert.NoError(t, err)
		assert.True(t, got.HasUser(userID))
	})

	t.Run("rejects a user already in this company", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		member := &model.User{ID: adminID, CompanyID: &companyID}

		companyRepo.EXPECT().FindByID(gomock.Any(), companyID).Return(company, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), adminID).Return(member, nil)

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		_, err := svc.AddUser(context.Background(), service.AddUserInput{
			CompanyID: companyID,
			UserID:    adminID,
			Role:      model.RoleMember,
		})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyInThisCompany)
	})

	t.Run("rejects a user who belongs to another company", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		otherCompany := uuid.New()
		poached := &model.User{ID: userID, CompanyID: &otherCompany}

		companyRepo.EXPECT().FindByID(gomock.Any(), companyID).Return(company, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(poached, nil)

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		_, err := svc.AddUser(context.Background(), service.AddUserInput{
			CompanyID: companyID,
			UserID:    userID,
			Role:      model.RoleCreator,
		})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyInCompany)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		_, err := svc.AddUser(context.Background(), service.AddUserInput{
			CompanyID: companyID,
			UserID:    userID,
			Role:      "owner",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCompanyRemoveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	adminID := uuid.New()

	t.Run("removing the sole admin leaves the company without admins", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		remaining := uuid.New()
		after := &model.Company{
			ID:     companyID,
			Admins: pq.StringArray{},
			Users:  pq.StringArray{remaining.String()},
		}

		companyRepo.EXPECT().
			RemoveUser(gomock.Any(), companyID, adminID).
			Return(after, nil)

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		got, err := svc.RemoveUser(context.Background(), companyID, adminID)

		assert.NoError(t, err)
		assert.Empty(t, got.Admins)
		assert.False(t, got.HasUser(adminID))
	})

	t.Run("propagates not-a-member", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		stranger := uuid.New()
		companyRepo.EXPECT().
			RemoveUser(gomock.Any(), companyID, stranger).
			Return(nil, domain.ErrNotCompanyMember)

		svc := service.NewCompanyService(companyRepo, userRepo, nil, &config.Config{})

		_, err := svc.RemoveUser(context.Background(), companyID, stranger)

		assert.ErrorIs(t, err, domain.ErrNotCompanyMember)
	})
}
