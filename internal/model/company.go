// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Company is the source of truth for "who is in this company". The company
// pointer on each member user is a derived back-reference and is only ever
// written alongside these lists.
type Company struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string         `gorm:"type:text;not null" json:"name"`
	Admins     pq.StringArray `gorm:"type:uuid[];not null" json:"admins"`
	Users      pq.StringArray `gorm:"type:uuid[];not null;default:'{}'" json:"users"`
	Workspaces pq.StringArray `gorm:"type:uuid[];not null;default:'{}'" json:"workspaces"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// HasUser reports whether the user id appears in the member list.
func (c *Company) HasUser(id uuid.UUID) bool {
	return containsID(c.Users, id)
}

// HasAdmin reports whether the user id appears in the admin list.
func (c *Company) HasAdmin(id uuid.UUID) bool {
	return containsID(c.Admins, id)
}

func containsID(ids pq.StringArray, id uuid.UUID) bool {
	s := id.String()
	for _, v := range ids {
		if v == s {
			return true
		}
	}
	return false
}
