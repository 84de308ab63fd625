// internal/model/workspace.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null" json:"company_id"`
	Users     Members   `gorm:"type:jsonb;not null;default:'[]'" json:"users"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member is a (user, role) seat in a workspace. Every seat has a reciprocal
// WorkspaceMembership entry on the user it names.
type Member struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}

// Members is a custom type that implements the sql.Scanner and driver.Valuer
// interfaces for a jsonb column.
type Members []Member

// Scan implements the sql.Scanner interface
func (m *Members) Scan(value interface{}) error {
	if value == nil {
		*m = Members{}
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
func (m Members) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Get returns the seat for the given user, if present.
func (m Members) Get(userID uuid.UUID) (Member, bool) {
	for _, seat := range m {
		if seat.UserID == userID {
			return seat, true
		}
	}
	return Member{}, false
}
