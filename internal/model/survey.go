// internal/model/survey.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SurveyType string

const (
	SurveyTypeEmail   SurveyType = "email"
	SurveyTypeWebsite SurveyType = "website"
	SurveyTypeApp     SurveyType = "app"
)

// ValidSurveyType reports whether t is a known delivery channel.
func ValidSurveyType(t SurveyType) bool {
	switch t {
	case SurveyTypeEmail, SurveyTypeWebsite, SurveyTypeApp:
		return true
	}
	return false
}

type Survey struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkspaceID uuid.UUID      `gorm:"type:uuid;not null" json:"workspace_id"`
	Questions   pq.StringArray `gorm:"type:uuid[];not null;default:'{}'" json:"questions"`
	ThemeID     *uuid.UUID     `gorm:"type:uuid" json:"theme_id"`
	Language    string         `gorm:"type:text;not null" json:"language"`
	Config      JSONMap        `gorm:"type:jsonb;not null;default:'{}'" json:"config"`
	Type        SurveyType     `gorm:"type:text;not null" json:"type"`
	Version     int            `gorm:"not null;default:1" json:"version"`
	IsDeleted   bool           `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// SurveyHistory is an immutable snapshot of a survey taken immediately before
// an update was applied. Rows are append-only.
type SurveyHistory struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SurveyID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"survey_id"`
	WorkspaceID uuid.UUID      `gorm:"type:uuid;not null" json:"workspace_id"`
	Questions   pq.StringArray `gorm:"type:uuid[];not null;default:'{}'" json:"questions"`
	ThemeID     *uuid.UUID     `gorm:"type:uuid" json:"theme_id"`
	Language    string         `gorm:"type:text;not null" json:"language"`
	Config      JSONMap        `gorm:"type:jsonb;not null;default:'{}'" json:"config"`
	Type        SurveyType     `gorm:"type:text;not null" json:"type"`
	Version     int            `gorm:"not null" json:"version"`
	Timestamp   time.Time      `gorm:"not null" json:"timestamp"`
}

// Snapshot copies the survey's current state into a history record stamped at t.
func (s *Survey) Snapshot(t time.Time) *SurveyHistory {
	return &SurveyHistory{
		SurveyID:    s.ID,
		WorkspaceID: s.WorkspaceID,
		Questions:   append(pq.StringArray(nil), s.Questions...),
		ThemeID:     s.ThemeID,
		Language:    s.Language,
		Config:      s.Config,
		Type:        s.Type,
		Version:     s.Version,
		Timestamp:   t,
	}
}

// SurveyTemplate is a reusable survey body without a workspace owner.
type SurveyTemplate struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Tags      pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"tags"`
	Questions pq.StringArray `gorm:"type:uuid[];not null;default:'{}'" json:"questions"`
	ThemeID   *uuid.UUID     `gorm:"type:uuid" json:"theme_id"`
	Language  string         `gorm:"type:text;not null" json:"language"`
	Config    JSONMap        `gorm:"type:jsonb;not null;default:'{}'" json:"config"`
	Type      SurveyType     `gorm:"type:text;not null" json:"type"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// JSONMap is a custom type that implements the sql.Scanner and driver.Valuer
// interfaces for free-form jsonb config columns.
type JSONMap map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*j = JSONMap{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, j)
	}

	return json.Unmarshal(data, j)
}

// Value implements the driver.Valuer interface
func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return "{}", nil
	}
	data, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
