// internal/service/theme.go
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
)

// ThemeService owns the theme aggregate. Versioning follows the survey
// pattern: snapshot before update, version bumped by one per accepted update.
type ThemeService struct {
	repo     repository.ThemeRepositoryIface
	validate *validator.Validate
}

func NewThemeService(repo repository.ThemeRepositoryIface) *ThemeService {
	return &ThemeService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateThemeInput struct {
	Type          model.ThemeType     `json:"type" validate:"required"`
	QuestionColor string              `json:"question_color"`
	AnswerColor   string              `json:"answer_color"`
	ButtonColor   string              `json:"button_color"`
	ProgressBar   string              `json:"progress_bar"`
	Background    string              `json:"background"`
	IsCustomized  bool                `json:"is_customized"`
	Customized    model.Customization `json:"customized"`
	CompanyID     *uuid.UUID          `json:"company_id"`
}

func (s *ThemeService) Create(ctx context.Context, input CreateThemeInput) (*model.Theme, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !model.ValidThemeType(input.Type) {
		return nil, domain.ErrInvalidThemeType
	}

	theme := &model.Theme{
		Type:          input.Type,
		QuestionColor: input.QuestionColor,
		AnswerColor:   input.AnswerColor,
		ButtonColor:   input.ButtonColor,
		ProgressBar:   input.ProgressBar,
		Background:    input.Background,
		IsCustomized:  input.IsCustomized,
		Customized:    input.Customized,
		Version:       1,
		CompanyID:     input.CompanyID,
	}

	if err := s.repo.Create(ctx, theme); err != nil {
		return nil, err
	}

	return theme, nil
}

// UpdateThemeInput names exactly the mutable theme fields; nil leaves a field
// unchanged.
type UpdateThemeInput struct {
	Type          *model.ThemeType     `json:"type"`
	QuestionColor *string              `json:"question_color"`
	AnswerColor   *string              `json:"answer_color"`
	ButtonColor   *string              `json:"button_color"`
	ProgressBar   *string              `json:"progress_bar"`
	Background    *string              `json:"background"`
	IsCustomized  *bool                `json:"is_customized"`
	Customized    *model.Customization `json:"customized"`
}

// Update snapshots the current theme into its history log, applies the
// partial update and increments the version, as one logical transaction.
func (s *ThemeService) Update(ctx context.Context, id uuid.UUID, input UpdateThemeInput) (*model.Theme, error) {
	if input.Type != nil && !model.ValidThemeType(*input.Type) {
		return nil, domain.ErrInvalidThemeType
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := current.Snapshot(time.Now().UTC())

	changes := map[string]interface{}{
		"version": current.Version + 1,
	}
	if input.Type != nil {
		changes["type"] = *input.Type
	}
	if input.QuestionColor != nil {
		changes["question_color"] = *input.QuestionColor
	}
	if input.AnswerColor != nil {
		changes["answer_color"] = *input.AnswerColor
	}
	if input.ButtonColor != nil {
		changes["button_color"] = *input.ButtonColor
	}
	if input.ProgressBar != nil {
		changes["progress_bar"] = *input.ProgressBar
	}
	if input.Background != nil {
		changes["background"] = *input.Background
	}
	if input.IsCustomized != nil {
		changes["is_customized"] = *input.IsCustomized
	}
	if input.Customized != nil {
		changes["customized"] = *input.Customized
	}

	return s.repo.Update(ctx, id, snapshot, changes)
}

func (s *ThemeService) Get(ctx context.Context, id uuid.UUID) (*model.Theme, error) {
	return s.repo.FindByID(ctx, id)
}

// History returns the theme's snapshots ordered oldest first.
func (s *ThemeService) History(ctx context.Context, themeID uuid.UUID) ([]model.ThemeHistory, error) {
	return s.repo.History(ctx, themeID)
}
