package service_test

import (
	"context"
	"testing"

	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/mocks"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/SurveyOS/SurveyOS-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestThemeCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("new themes start at version 1", func(t *testing.T) {
		themeRepo := mocks.NewMockThemeRepositoryIface(ctrl)

		themeRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, theme *model.Theme) error {
				assert.Equal(t, 1, theme.Version)
				assert.Equal(t, model.ThemeTypePublic, theme.Type)
				return nil
			})

		svc := service.NewThemeService(themeRepo)

		theme, err := svc.Create(context.Background(), service.CreateThemeInput{
			Type:          model.ThemeTypePublic,
			QuestionColor: "#111111",
			AnswerColor:   "#222222",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, theme.Version)
	})

	t.Run("rejects an unknown theme type", func(t *testing.T) {
		themeRepo := mocks.NewMockThemeRepositoryIface(ctrl)

		svc := service.NewThemeService(themeRepo)

		_, err := svc.Create(context.Background(), service.CreateThemeInput{
			Type: "shared",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidThemeType)
	})
}

func TestThemeUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	themeID := uuid.New()

	current := &model.Theme{
		ID:            themeID,
		Type:          model.ThemeTypePrivate,
		QuestionColor: "#111111",
		Version:       3,
	}

	t.Run("snapshots the pre-update state and bumps the version", func(t *testing.T) {
		themeRepo := mocks.NewMockThemeRepositoryIface(ctrl)

		newColor := "#333333"

		themeRepo.EXPECT().FindByID(gomock.Any(), themeID).Return(current, nil)
		themeRepo.EXPECT().
			Update(gomock.Any(), themeID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, snapshot *model.ThemeHistory, changes map[string]interface{}) (*model.Theme, error) {
				assert.Equal(t, themeID, snapshot.ThemeID)
				assert.Equal(t, "#111111", snapshot.QuestionColor)
				assert.Equal(t, 3, snapshot.Version)

				assert.Equal(t, 4, changes["version"])
				assert.Equal(t, "#333333", changes["question_color"])

				return &model.Theme{ID: themeID, QuestionColor: "#333333", Version: 4}, nil
			})

		svc := service.NewThemeService(themeRepo)

		updated, err := svc.Update(context.Background(), themeID, service.UpdateThemeInput{
			QuestionColor: &newColor,
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, updated.Version)
	})

	t.Run("a concurrent update surfaces a version conflict", func(t *testing.T) {
		themeRepo := mocks.NewMockThemeRepositoryIface(ctrl)

		newColor := "#555555"

		themeRepo.EXPECT().FindByID(gomock.Any(), themeID).Return(current, nil)
		themeRepo.EXPECT().
			Update(gomock.Any(), themeID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, snapshot *model.ThemeHistory, _ map[string]interface{}) (*model.Theme, error) {
				assert.Equal(t, 3, snapshot.Version)
				return nil, domain.ErrVersionConflict
			})

		svc := service.NewThemeService(themeRepo)

		_, err := svc.Update(context.Background(), themeID, service.UpdateThemeInput{
			QuestionColor: &newColor,
		})

		assert.ErrorIs(t, err, domain.ErrVersionConflict)
	})

	t.Run("rejects an unknown theme type without touching the store", func(t *testing.T) {
		themeRepo := mocks.NewMockThemeRepositoryIface(ctrl)

		badType := model.ThemeType("shared")

		svc := service.NewThemeService(themeRepo)

		_, err := svc.Update(context.Background(), themeID, service.UpdateThemeInput{
			Type: &badType,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidThemeType)
	})

	t.Run("fails when the theme does not exist", func(t *testing.T) {
		themeRepo := mocks.NewMockThemeRepositoryIface(ctrl)

		themeRepo.EXPECT().
			FindByID(gomock.Any(), themeID).
			Return(nil, domain.ErrThemeNotFound)

		svc := service.NewThemeService(themeRepo)

		newColor := "#444444"
		_, err := svc.Update(context.Background(), themeID, service.UpdateThemeInput{
			QuestionColor: &newColor,
		})

		assert.ErrorIs(t, err, domain.ErrThemeNotFound)
	})
}

func TestThemeHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	themeID := uuid.New()

	themeRepo := mocks.NewMockThemeRepositoryIface(ctrl)

	themeRepo.EXPECT().
		History(gomock.Any(), themeID).
		Return([]model.ThemeHistory{
			{ThemeID: themeID, Version: 1},
			{ThemeID: themeID, Version: 2},
			{ThemeID: themeID, Version: 3},
		}, nil)

	svc := service.NewThemeService(themeRepo)

	history, err := svc.History(context.Background(), themeID)

	assert.NoError(t, err)
	assert.Len(t, history, 3)
	assert.Equal(t, 1, history[0].Version)
}
