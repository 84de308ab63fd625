package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/mocks"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/SurveyOS/SurveyOS-api/internal/service"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSurveyCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspaceID := uuid.New()

	t.Run("new surveys start at version 1", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		surveyRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, survey *model.Survey) error {
				assert.Equal(t, 1, survey.Version)
				assert.Equal(t, workspaceID, survey.WorkspaceID)
				assert.NotNil(t, survey.Config)
				return nil
			})

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		survey, err := svc.Create(context.Background(), service.CreateSurveyInput{
			WorkspaceID: workspaceID,
			Language:    "en",
			Type:        model.SurveyTypeWebsite,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, survey.Version)
	})

	t.Run("rejects an unknown survey type", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		_, err := svc.Create(context.Background(), service.CreateSurveyInput{
			WorkspaceID: workspaceID,
			Language:    "en",
			Type:        "carrier-pigeon",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidSurveyType)
	})
}

func TestSurveyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surveyID := uuid.New()
	workspaceID := uuid.New()

	current := &model.Survey{
		ID:          surveyID,
		WorkspaceID: workspaceID,
		Questions:   pq.StringArray{},
		Language:    "en",
		Config:      model.JSONMap{"show_progress": true},
		Type:        model.SurveyTypeWebsite,
		Version:     1,
	}

	t.Run("snapshots the pre-update state and bumps the version", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		newLanguage := "fr"

		surveyRepo.EXPECT().FindByID(gomock.Any(), surveyID).Return(current, nil)
		surveyRepo.EXPECT().
			Update(gomock.Any(), surveyID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, snapshot *model.SurveyHistory, changes map[string]interface{}) (*model.Survey, error) {
				// The snapshot records what the survey looked like before.
				assert.Equal(t, surveyID, snapshot.SurveyID)
				assert.Equal(t, "en", snapshot.Language)
				assert.Equal(t, 1, snapshot.Version)
				assert.False(t, snapshot.Timestamp.IsZero())

				assert.Equal(t, 2, changes["version"])
				assert.Equal(t, "fr", changes["language"])
				_, touched := changes["type"]
				assert.False(t, touched)

				return &model.Survey{ID: surveyID, Language: "fr", Version: 2}, nil
			})

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		updated, err := svc.Update(context.Background(), surveyID, service.UpdateSurveyInput{
			Language: &newLanguage,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, updated.Version)
	})

	t.Run("a failed snapshot aborts the update", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		newLanguage := "de"
		snapshotErr := errors.New("history insert failed")

		surveyRepo.EXPECT().FindByID(gomock.Any(), surveyID).Return(current, nil)
		surveyRepo.EXPECT().
			Update(gomock.Any(), surveyID, gomock.Any(), gomock.Any()).
			Return(nil, snapshotErr)

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		_, err := svc.Update(context.Background(), surveyID, service.UpdateSurveyInput{
			Language: &newLanguage,
		})

		assert.ErrorIs(t, err, snapshotErr)
	})

	t.Run("a concurrent update surfaces a version conflict", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		newLanguage := "es"

		surveyRepo.EXPECT().FindByID(gomock.Any(), surveyID).Return(current, nil)
		surveyRepo.EXPECT().
			Update(gomock.Any(), surveyID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, snapshot *model.SurveyHistory, _ map[string]interface{}) (*model.Survey, error) {
				// The store guards the write on this version; a racing update
				// that got there first makes the guard miss.
				assert.Equal(t, 1, snapshot.Version)
				return nil, domain.ErrVersionConflict
			})

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		_, err := svc.Update(context.Background(), surveyID, service.UpdateSurveyInput{
			Language: &newLanguage,
		})

		assert.ErrorIs(t, err, domain.ErrVersionConflict)
	})

	t.Run("rejects an unknown survey type without touching the store", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		badType := model.SurveyType("fax")

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		_, err := svc.Update(context.Background(), surveyID, service.UpdateSurveyInput{
			Type: &badType,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidSurveyType)
	})
}

func TestSurveyAddQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surveyID := uuid.New()
	questionID := uuid.New()

	t.Run("verifies the question before attaching", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		questionRepo.EXPECT().
			FindByID(gomock.Any(), questionID).
			Return(&model.Question{ID: questionID}, nil)
		surveyRepo.EXPECT().
			AddQuestion(gomock.Any(), surveyID, questionID).
			Return(&model.Survey{ID: surveyID, Questions: pq.StringArray{questionID.String()}}, nil)

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		survey, err := svc.AddQuestion(context.Background(), surveyID, questionID)

		assert.NoError(t, err)
		assert.Contains(t, survey.Questions, questionID.String())
	})

	t.Run("fails when the question does not exist", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		questionRepo.EXPECT().
			FindByID(gomock.Any(), questionID).
			Return(nil, domain.ErrQuestionNotFound)

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		_, err := svc.AddQuestion(context.Background(), surveyID, questionID)

		assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	})
}

func TestSurveyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surveyID := uuid.New()

	surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
	questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

	surveyRepo.EXPECT().
		History(gomock.Any(), surveyID).
		Return([]model.SurveyHistory{
			{SurveyID: surveyID, Version: 1},
			{SurveyID: surveyID, Version: 2},
		}, nil)

	svc := service.NewSurveyService(surveyRepo, questionRepo)

	history, err := svc.History(context.Background(), surveyID)

	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, 1, history[0].Version)
}

func TestSurveyDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surveyID := uuid.New()

	surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
	questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

	surveyRepo.EXPECT().SoftDelete(gomock.Any(), surveyID).Return(nil)

	svc := service.NewSurveyService(surveyRepo, questionRepo)

	assert.NoError(t, svc.Delete(context.Background(), surveyID))
}

func TestSurveyTemplates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("creates a template", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		surveyRepo.EXPECT().
			CreateTemplate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, template *model.SurveyTemplate) error {
				assert.Equal(t, pq.StringArray{"nps"}, template.Tags)
				return nil
			})

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		template, err := svc.CreateTemplate(context.Background(), service.CreateTemplateInput{
			Tags:     []string{"nps"},
			Language: "en",
			Type:     model.SurveyTypeEmail,
		})

		assert.NoError(t, err)
		assert.NotNil(t, template)
	})

	t.Run("deletes a template", func(t *testing.T) {
		surveyRepo := mocks.NewMockSurveyRepositoryIface(ctrl)
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)

		templateID := uuid.New()
		surveyRepo.EXPECT().DeleteTemplate(gomock.Any(), templateID).Return(nil)

		svc := service.NewSurveyService(surveyRepo, questionRepo)

		assert.NoError(t, svc.DeleteTemplate(context.Background(), templateID))
	})
}
