// internal/model/user.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCreator Role = "creator"
	RoleMember  Role = "member"
)

// ValidRole reports whether r is one of the known membership roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleCreator, RoleMember:
		return true
	}
	return false
}

type Provider string

const ProviderGoogle Provider = "google"

type User struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string               `gorm:"type:text;not null" json:"name"`
	Email        string               `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash string               `gorm:"type:text" json:"-"`
	GoogleID     string               `gorm:"type:text" json:"google_id,omitempty"`
	Avatar       string               `gorm:"type:text" json:"avatar,omitempty"`
	Provider     Provider             `gorm:"type:text" json:"provider,omitempty"`
	CompanyID    *uuid.UUID           `gorm:"type:uuid" json:"company_id"`
	CompanyRole  Role                 `gorm:"type:text" json:"company_role,omitempty"`
	Workspaces   WorkspaceMemberships `gorm:"type:jsonb;not null;default:'[]'" json:"workspaces"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// WorkspaceMembership is the reciprocal entry on a user for a seat held in a
// workspace. It must always agree with the workspace's own member list.
type WorkspaceMembership struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Role        Role      `json:"role"`
}

// WorkspaceMemberships is a custom type that implements the sql.Scanner and
// driver.Valuer interfaces for a jsonb column.
type WorkspaceMemberships []WorkspaceMembership

// Scan implements the sql.Scanner interface
func (m *WorkspaceMemberships) Scan(value interface{}) error {
	if value == nil {
		*m = WorkspaceMemberships{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, m)
	}

	return json.Unmarshal(data, m)
}

// Value implements the driver.Valuer interface
func (m WorkspaceMemberships) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// RoleIn returns the role the user holds in the given workspace, if any.
func (u *User) RoleIn(workspaceID uuid.UUID) (Role, bool) {
	for _, m := range u.Workspaces {
		if m.WorkspaceID == workspaceID {
			return m.Role, true
		}
	}
	return "", false
}
