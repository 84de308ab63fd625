// internal/repository/survey.go
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

type SurveyRepositoryIface interface {
	Create(ctx context.Context, survey *model.Survey) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Survey, error)
	Update(ctx context.Context, id uuid.UUID, snapshot *model.SurveyHistory, changes map[string]interface{}) (*model.Survey, error)
	AddQuestion(ctx context.Context, surveyID, questionID uuid.UUID) (*model.Survey, error)
	History(ctx context.Context, surveyID uuid.UUID) ([]model.SurveyHistory, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	CreateTemplate(ctx context.Context, template *model.SurveyTemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

type SurveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

func (r *SurveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	if err := r.db.WithContext(ctx).Create(survey).Error; err != nil {
		return fmt.Errorf("creating survey: %w", err)
	}
	return nil
}

func (r *SurveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.WithContext(ctx).First(&survey, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("finding survey: %w", err)
	}
	return &survey, nil
}

// Update writes the pre-update snapshot and applies the changes in one
// transaction. Snapshot-then-update ordering is a correctness requirement: if
// the history insert fails, the survey is left untouched. The update is
// guarded on the snapshot's version, so a concurrent update of the same
// survey loses with a conflict instead of reusing the version number.
func (r *SurveyRepository) Update(ctx context.Context, id uuid.UUID, snapshot *model.SurveyHistory, changes map[string]interface{}) (*model.Survey, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(snapshot).Error; err != nil {
			return fmt.Errorf("saving survey history: %w", err)
		}

		result := tx.Model(&model.Survey{}).
			Where("id = ? AND version = ?", id, snapshot.Version).
			Updates(changes)
		if result.Error != nil {
			return fmt.Errorf("updating survey: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Survey{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("checking survey: %w", err)
			}
			if count == 0 {
				return domain.ErrSurveyNotFound
			}
			return domain.ErrVersionConflict
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrSurveyNotFound) || errors.Is(err, domain.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	return r.FindByID(ctx, id)
}

// AddQuestion appends the question id as a guarded single statement, so two
// concurrent appends cannot clobber each other's entry.
func (r *SurveyRepository) AddQuestion(ctx context.Context, surveyID, questionID uuid.UUID) (*model.Survey, error) {
	qid := questionID.String()

	result := r.db.WithContext(ctx).Model(&model.Survey{}).
		Where("id = ? AND NOT (questions @> ARRAY[?]::uuid[])", surveyID, qid).
		Update("questions", gorm.Expr("array_append(questions, ?::uuid)", qid))
	if result.Error != nil {
		return nil, fmt.Errorf("appending question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the survey is gone or the question is already attached;
		// FindByID disambiguates.
		if _, err := r.FindByID(ctx, surveyID); err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, surveyID)
}

func (r *SurveyRepository) History(ctx context.Context, surveyID uuid.UUID) ([]model.SurveyHistory, error) {
	var history []model.SurveyHistory
	if err := r.db.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Order("timestamp asc").
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("finding survey history: %w", err)
	}
	return history, nil
}

func (r *SurveyRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Survey{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("deleting survey: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSurveyNotFound
	}
	return nil
}

func (r *SurveyRepository) CreateTemplate(ctx context.Context, template *model.SurveyTemplate) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("creating survey template: %w", err)
	}
	return nil
}

func (r *SurveyRepository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SurveyTemplate{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting survey template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSurveyTemplateNotFound
	}
	return nil
}
