// internal/repository/theme.go
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

type ThemeRepositoryIface interface {
	Create(ctx context.Context, theme *model.Theme) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Theme, error)
	Update(ctx context.Context, id uuid.UUID, snapshot *model.ThemeHistory, changes map[string]interface{}) (*model.Theme, error)
	History(ctx context.Context, themeID uuid.UUID) ([]model.ThemeHistory, error)
}

type ThemeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

func (r *ThemeRepository) Create(ctx context.Context, theme *model.Theme) error {
	if err := r.db.WithContext(ctx).Create(theme).Error; err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}
	return nil
}

func (r *ThemeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Theme, error) {
	var theme model.Theme
	if err := r.db.WithContext(ctx).First(&theme, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrThemeNotFound
		}
		return nil, fmt.Errorf("finding theme: %w", err)
	}
	return &theme, nil
}

// Update writes the pre-update snapshot and applies the changes in one
// transaction, mirroring the survey history pattern. The update is guarded on
// the snapshot's version, so concurrent updates cannot both claim the same
// version number.
func (r *ThemeRepository) Update(ctx context.Context, id uuid.UUID, snapshot *model.ThemeHistory, changes map[string]interface{}) (*model.Theme, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(snapshot).Error; err != nil {
			return fmt.Errorf("saving theme history: %w", err)
		}

		result := tx.Model(&model.Theme{}).
			Where("id = ? AND version = ?", id, snapshot.Version).
			Updates(changes)
		if result.Error != nil {
			return fmt.Errorf("updating theme: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Theme{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("checking theme: %w", err)
			}
			if count == 0 {
				return domain.ErrThemeNotFound
			}
			return domain.ErrVersionConflict
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrThemeNotFound) || errors.Is(err, domain.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	return r.FindByID(ctx, id)
}

func (r *ThemeRepository) History(ctx context.Context, themeID uuid.UUID) ([]model.ThemeHistory, error) {
	var history []model.ThemeHistory
	if err := r.db.WithContext(ctx).
		Where("theme_id = ?", themeID).
		Order("updated_at asc").
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("finding theme history: %w", err)
	}
	return history, nil
}
