// internal/repository/workspace.go
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

type WorkspaceRepositoryIface interface {
	Create(ctx context.Context, workspace *model.Workspace) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Workspace, error)
	UpdateMembers(ctx context.Context, id uuid.UUID, members model.Members, unlink []uuid.UUID, link []model.Member) (*model.Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create persists the workspace, pushes a reciprocal membership entry onto
// every initial member and registers the workspace on its company, all in one
// transaction.
func (r *WorkspaceRepository) Create(ctx context.Context, workspace *model.Workspace) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return fmt.Errorf("creating workspace: %w", err)
		}

		for _, seat := range workspace.Users {
			if err := pullMembership(tx, seat.UserID, workspace.ID); err != nil {
				return fmt.Errorf("clearing stale membership: %w", err)
			}
			entry := model.WorkspaceMembership{WorkspaceID: workspace.ID, Role: seat.Role}
			if err := pushMembership(tx, seat.UserID, entry); err != nil {
				return fmt.Errorf("linking member to workspace: %w", err)
			}
		}

		result := tx.Model(&model.Company{}).
			Where("id = ? AND NOT (workspaces @> ARRAY[?]::uuid[])", workspace.CompanyID, workspace.ID.String()).
			Update("workspaces", gorm.Expr("array_append(workspaces, ?::uuid)", workspace.ID.String()))
		if result.Error != nil {
			return fmt.Errorf("registering workspace on company: %w", result.Error)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Workspace, error) {
	var workspace model.Workspace
	if err := r.db.WithContext(ctx).First(&workspace, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("finding workspace: %w", err)
	}
	return &workspace, nil
}

// UpdateMembers replaces the workspace's member list and reconciles the
// reciprocal entries on affected users: ids in unlink lose their entry, seats
// in link get a fresh one (any stale entry is pulled first, so no user ends up
// with two entries for the same workspace).
func (r *WorkspaceRepository) UpdateMembers(ctx context.Context, id uuid.UUID, members model.Members, unlink []uuid.UUID, link []model.Member) (*model.Workspace, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Workspace{}).Where("id = ?", id).Update("users", members)
		if result.Error != nil {
			return fmt.Errorf("updating member list: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrWorkspaceNotFound
		}

		for _, userID := range unlink {
			if err := pullMembership(tx, userID, id); err != nil {
				return fmt.Errorf("unlinking member: %w", err)
			}
		}

		for _, seat := range link {
			if err := pullMembership(tx, seat.UserID, id); err != nil {
				return fmt.Errorf("clearing stale membership: %w", err)
			}
			entry := model.WorkspaceMembership{WorkspaceID: id, Role: seat.Role}
			if err := pushMembership(tx, seat.UserID, entry); err != nil {
				return fmt.Errorf("linking member: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	return r.FindByID(ctx, id)
}

// Delete removes the workspace for good, stripping the reciprocal entry from
// every member and deregistering it from its company. Deletion here is hard;
// surveys and questions soft-delete instead.
func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var workspace model.Workspace
		if err := tx.First(&workspace, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrWorkspaceNotFound
			}
			return fmt.Errorf("finding workspace: %w", err)
		}

		for _, seat := range workspace.Users {
			if err := pullMembership(tx, seat.UserID, id); err != nil {
				return fmt.Errorf("unlinking member: %w", err)
			}
		}

		result := tx.Model(&model.Company{}).
			Where("id = ?", workspace.CompanyID).
			Update("workspaces", gorm.Expr("array_remove(workspaces, ?::uuid)", id.String()))
		if result.Error != nil {
			return fmt.Errorf("deregistering workspace from company: %w", result.Error)
		}

		if err := tx.Delete(&model.Workspace{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting workspace: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
