// internal/service/question.go
package service

import (
	"context"
	"fmt"

	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/SurveyOS/SurveyOS-api/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// QuestionService owns question documents. Questions are referenced by
// surveys by id and are soft-deleted, never removed.
type QuestionService struct {
	repo     repository.QuestionRepositoryIface
	validate *validator.Validate
}

func NewQuestionService(repo repository.QuestionRepositoryIface) *QuestionService {
	return &QuestionService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateQuestionInput struct {
	Type        string   `json:"type" validate:"required"`
	Label       string   `json:"label" validate:"required"`
	IsRequired  bool     `json:"is_required"`
	Validations []string `json:"validations"`
	OnLoad      string   `json:"on_load"`
	PostSubmit  string   `json:"post_submit"`
}

func (s *QuestionService) Create(ctx context.Context, input CreateQuestionInput) (*model.Question, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	question := &model.Question{
		Type:        input.Type,
		Label:       input.Label,
		IsRequired:  input.IsRequired,
		Validations: pq.StringArray(input.Validations),
		OnLoad:      input.OnLoad,
		PostSubmit:  input.PostSubmit,
	}

	if err := s.repo.Create(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// UpdateQuestionInput names exactly the mutable question fields; nil leaves a
// field unchanged.
type UpdateQuestionInput struct {
	Type        *string   `json:"type"`
	Label       *string   `json:"label"`
	IsRequired  *bool     `json:"is_required"`
	Validations *[]string `json:"validations"`
	OnLoad      *string   `json:"on_load"`
	PostSubmit  *string   `json:"post_submit"`
}

func (s *QuestionService) Update(ctx context.Context, id uuid.UUID, input UpdateQuestionInput) (*model.Question, error) {
	changes := map[string]interface{}{}
	if input.Type != nil {
		changes["type"] = *input.Type
	}
	if input.Label != nil {
		changes["label"] = *input.Label
	}
	if input.IsRequired != nil {
		changes["is_required"] = *input.IsRequired
	}
	if input.Validations != nil {
		changes["validations"] = pq.StringArray(*input.Validations)
	}
	if input.OnLoad != nil {
		changes["on_load"] = *input.OnLoad
	}
	if input.PostSubmit != nil {
		changes["post_submit"] = *input.PostSubmit
	}

	if len(changes) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	return s.repo.Update(ctx, id, changes)
}

func (s *QuestionService) Get(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *QuestionService) GetMany(ctx context.Context, ids []uuid.UUID) ([]model.Question, error) {
	return s.repo.FindMany(ctx, ids)
}

// Delete soft-deletes the question; surveys referencing it keep the id.
func (s *QuestionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

// Copy duplicates an existing question as a fresh document.
func (s *QuestionService) Copy(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	original, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	duplicate := &model.Question{
		Type:        original.Type,
		Label:       original.Label,
		IsRequired:  original.IsRequired,
		Validations: append(pq.StringArray(nil), original.Validations...),
		OnLoad:      original.OnLoad,
		PostSubmit:  original.PostSubmit,
	}

	if err := s.repo.Create(ctx, duplicate); err != nil {
		return nil, err
	}

	return duplicate, nil
}
