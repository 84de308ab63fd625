// internal/repository/company.go
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

type CompanyRepositoryIface interface {
	Create(ctx context.Context, company *model.Company, adminID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	AddUser(ctx context.Context, companyID, userID uuid.UUID, role model.Role) (*model.Company, error)
	RemoveUser(ctx context.Context, companyID, userID uuid.UUID) (*model.Company, error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create persists a new company and sets the founding admin's back-reference
// in the same transaction. If the user write fails the company is rolled back
// so it never exists without a consistent admin.
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company, adminID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return fmt.Errorf("creating company: %w", err)
		}

		result := tx.Model(&model.User{}).
			Where("id = ? AND company_id IS NULL", adminID).
			Updates(map[string]interface{}{
				"company_id":   company.ID,
				"company_role": model.RoleAdmin,
			})
		if result.Error != nil {
			return fmt.Errorf("linking admin to company: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserAlreadyInCompany
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyInCompany) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company: %w", err)
	}
	return &company, nil
}

// AddUser appends the user to the company's member list (and admin list when
// the role is admin) and sets the user's company pointer. Array appends are
// guarded single statements, so concurrent adds cannot lose each other's entry
// or produce duplicates.
func (r *CompanyRepository) AddUser(ctx context.Context, companyID, userID uuid.UUID, role model.Role) (*model.Company, error) {
	uid := userID.String()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Company{}).
			Where("id = ? AND NOT (users @> ARRAY[?]::uuid[])", companyID, uid).
			Update("users", gorm.Expr("array_append(users, ?::uuid)", uid))
		if result.Error != nil {
			return fmt.Errorf("appending user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Company{}).Where("id = ?", companyID).Count(&count).Error; err != nil {
				return fmt.Errorf("checking company: %w", err)
			}
			if count == 0 {
				return domain.ErrCompanyNotFound
			}
			return domain.ErrUserAlreadyInThisCompany
		}

		if role == model.RoleAdmin {
			result = tx.Model(&model.Company{}).
				Where("id = ? AND NOT (admins @> ARRAY[?]::uuid[])", companyID, uid).
				Update("admins", gorm.Expr("array_append(admins, ?::uuid)", uid))
			if result.Error != nil {
				return fmt.Errorf("appending admin: %w", result.Error)
			}
		}

		result = tx.Model(&model.User{}).
			Where("id = ? AND (company_id IS NULL OR company_id = ?)", userID, companyID).
			Updates(map[string]interface{}{
				"company_id":   companyID,
				"company_role": role,
			})
		if result.Error != nil {
			return fmt.Errorf("linking user to company: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserAlreadyInCompany
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) ||
			errors.Is(err, domain.ErrUserAlreadyInThisCompany) ||
			errors.Is(err, domain.ErrUserAlreadyInCompany) {
			return nil, err
		}
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	return r.FindByID(ctx, companyID)
}

// RemoveUser removes the user from both member and admin lists and clears the
// user's company pointer in one transaction. A company may be left with no
// admins; nobody is promoted in their place.
func (r *CompanyRepository) RemoveUser(ctx context.Context, companyID, userID uuid.UUID) (*model.Company, error) {
	uid := userID.String()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Company{}).
			Where("id = ? AND users @> ARRAY[?]::uuid[]", companyID, uid).
			Updates(map[string]interface{}{
				"users":  gorm.Expr("array_remove(users, ?::uuid)", uid),
				"admins": gorm.Expr("array_remove(admins, ?::uuid)", uid),
			})
		if result.Error != nil {
			return fmt.Errorf("removing user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Company{}).Where("id = ?", companyID).Count(&count).Error; err != nil {
				return fmt.Errorf("checking company: %w", err)
			}
			if count == 0 {
				return domain.ErrCompanyNotFound
			}
			return domain.ErrNotCompanyMember
		}

		result = tx.Model(&model.User{}).
			Where("id = ? AND company_id = ?", userID, companyID).
			Updates(map[string]interface{}{
				"company_id":   nil,
				"company_role": "",
			})
		if result.Error != nil {
			return fmt.Errorf("unlinking user from company: %w", result.Error)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) || errors.Is(err, domain.ErrNotCompanyMember) {
			return nil, err
		}
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	return r.FindByID(ctx, companyID)
}
