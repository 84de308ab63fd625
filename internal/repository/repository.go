// internal/repository/repository.go
package repository

import (
	"encoding/json"

	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reciprocal membership links between users and workspaces are maintained with
// single-statement jsonb updates so that two concurrent mutations on the same
// user cannot clobber each other's list. Both helpers are only ever called
// inside a transaction owned by the workspace repository.

// pullMembership strips every entry for the given workspace from the user's
// workspaces list, regardless of role.
func pullMembership(tx *gorm.DB, userID, workspaceID uuid.UUID) error {
	return tx.Exec(`
		UPDATE users SET workspaces = (
			SELECT COALESCE(jsonb_agg(e), '[]'::jsonb)
			FROM jsonb_array_elements(workspaces) AS e
			WHERE e->>'workspace_id' <> ?
		)
		WHERE id = ?`,
		workspaceID.String(), userID,
	).Error
}

// pushMembership appends a {workspace, role} entry onto the user's workspaces
// list. Callers pull any stale entry first so a user never holds two entries
// for the same workspace.
func pushMembership(tx *gorm.DB, userID uuid.UUID, entry model.WorkspaceMembership) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return tx.Exec(
		`UPDATE users SET workspaces = workspaces || ?::jsonb WHERE id = ?`,
		string(data), userID,
	).Error
}
