// internal/repository/question.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/SurveyOS/SurveyOS-api/internal/domain"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepositoryIface interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	FindMany(ctx context.Context, ids []uuid.UUID) ([]model.Question, error)
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*model.Question, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question *model.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("creating question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("finding question: %w", err)
	}
	return &question, nil
}

func (r *QuestionRepository) FindMany(ctx context.Context, ids []uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("finding questions: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*model.Question, error) {
	result := r.db.WithContext(ctx).Model(&model.Question{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return nil, fmt.Errorf("updating question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrQuestionNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *QuestionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("deleting question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}
