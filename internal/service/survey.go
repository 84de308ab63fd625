// internal/service/survey.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/SurveyOS/SurveyOS-api/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SurveyService owns the survey aggregate and its version history. Every
// accepted update snapshots the pre-update document before applying changes
// and bumps the version by exactly one.
type SurveyService struct {
	repo         repository.SurveyRepositoryIface
	questionRepo repository.QuestionRepositoryIface
	validate     *validator.Validate
}

func NewSurveyService(
	repo repository.SurveyRepositoryIface,
	questionRepo repository.QuestionRepositoryIface,
) *SurveyService {
	return &SurveyService{
		repo:         repo,
		questionRepo: questionRepo,
		validate:     validator.New(),
	}
}

type CreateSurveyInput struct {
	WorkspaceID uuid.UUID        `json:"workspace_id" validate:"required"`
	Questions   []uuid.UUID      `json:"questions"`
	ThemeID     *uuid.UUID       `json:"theme_id"`
	Language    string           `json:"language" validate:"required"`
	Config      model.JSONMap    `json:"config"`
	Type        model.SurveyType `json:"type" validate:"required"`
}

func (s *SurveyService) Create(ctx context.Context, input CreateSurveyInput) (*model.Survey, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !model.ValidSurveyType(input.Type) {
		return nil, domain.ErrInvalidSurveyType
	}

	cfg := input.Config
	if cfg == nil {
		cfg = model.JSONMap{}
	}

	survey := &model.Survey{
		WorkspaceID: input.WorkspaceID,
		Questions:   idsToArray(input.Questions),
		ThemeID:     input.ThemeID,
		Language:    input.Language,
		Config:      cfg,
		Type:        input.Type,
		Version:     1,
	}

	if err := s.repo.Create(ctx, survey); err != nil {
		return nil, err
	}

	return survey, nil
}

// UpdateSurveyInput names exactly the mutable survey fields. Nil means "leave
// unchanged"; the id and version are never caller-settable.
type UpdateSurveyInput struct {
	Questions *[]uuid.UUID      `json:"questions"`
	ThemeID   *uuid.UUID        `json:"theme_id"`
	Language  *string           `json:"language"`
	Config    *model.JSONMap    `json:"config"`
	Type      *model.SurveyType `json:"type"`
}

// Update snapshots the current document into the history log, applies the
// partial update and increments the version, as one logical transaction. A
// failed snapshot aborts the update.
func (s *SurveyService) Update(ctx context.Context, id uuid.UUID, input UpdateSurveyInput) (*model.Survey, error) {
	if input.Type != nil && !model.ValidSurveyType(*input.Type) {
		return nil, domain.ErrInvalidSurveyType
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := current.Snapshot(time.Now().UTC())

	changes := map[string]interface{}{
		"version": current.Version + 1,
	}
	if input.Questions != nil {
		changes["questions"] = idsToArray(*input.Questions)
	}
	if input.ThemeID != nil {
		changes["theme_id"] = *input.ThemeID
	}
	if input.Language != nil {
		changes["language"] = *input.Language
	}
	if input.Config != nil {
		changes["config"] = *input.Config
	}
	if input.Type != nil {
		changes["type"] = *input.Type
	}

	return s.repo.Update(ctx, id, snapshot, changes)
}

// AddQuestion attaches an existing question to the survey's ordered list.
func (s *SurveyService) AddQuestion(ctx context.Context, surveyID, questionID uuid.UUID) (*model.Survey, error) {
	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		return nil, err
	}

	return s.repo.AddQuestion(ctx, surveyID, questionID)
}

func (s *SurveyService) Get(ctx context.Context, id uuid.UUID) (*model.Survey, error) {
	return s.repo.FindByID(ctx, id)
}

// History returns the survey's snapshots ordered oldest first.
func (s *SurveyService) History(ctx context.Context, surveyID uuid.UUID) ([]model.SurveyHistory, error) {
	return s.repo.History(ctx, surveyID)
}

// Delete soft-deletes the survey. The document and its history remain
// queryable.
func (s *SurveyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

type CreateTemplateInput struct {
	Tags      []string         `json:"tags"`
	Questions []uuid.UUID      `json:"questions"`
	ThemeID   *uuid.UUID       `json:"theme_id"`
	Language  string           `json:"language" validate:"required"`
	Config    model.JSONMap    `json:"config"`
	Type      model.SurveyType `json:"type" validate:"required"`
}

func (s *SurveyService) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*model.SurveyTemplate, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !model.ValidSurveyType(input.Type) {
		return nil, domain.ErrInvalidSurveyType
	}

	cfg := input.Config
	if cfg == nil {
		cfg = model.JSONMap{}
	}

	template := &model.SurveyTemplate{
		Tags:      pq.StringArray(input.Tags),
		Questions: idsToArray(input.Questions),
		ThemeID:   input.ThemeID,
		Language:  input.Language,
		Config:    cfg,
		Type:      input.Type,
	}

	if err := s.repo.CreateTemplate(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

func (s *SurveyService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTemplate(ctx, id)
}

func idsToArray(ids []uuid.UUID) pq.StringArray {
	arr := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, id.String())
	}
	return arr
}
