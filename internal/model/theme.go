// internal/model/theme.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ThemeType string

const (
	ThemeTypePublic  ThemeType = "public"
	ThemeTypePrivate ThemeType = "private"
)

// ValidThemeType reports whether t is a known theme visibility.
func ValidThemeType(t ThemeType) bool {
	return t == ThemeTypePublic || t == ThemeTypePrivate
}

type Theme struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Type          ThemeType     `gorm:"type:text;not null" json:"type"`
	QuestionColor string        `gorm:"type:text" json:"question_color"`
	AnswerColor   string        `gorm:"type:text" json:"answer_color"`
	ButtonColor   string        `gorm:"type:text" json:"button_color"`
	ProgressBar   string        `gorm:"type:text" json:"progress_bar"`
	Background    string        `gorm:"type:text" json:"background"`
	IsCustomized  bool          `gorm:"not null;default:false" json:"is_customized"`
	Customized    Customization `gorm:"type:jsonb;not null;default:'{}'" json:"customized"`
	Version       int           `gorm:"not null;default:1" json:"version"`
	CompanyID     *uuid.UUID    `gorm:"type:uuid" json:"company_id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ThemeHistory is an immutable snapshot of a theme taken immediately before an
// update was applied.
type ThemeHistory struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ThemeID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"theme_id"`
	Type          ThemeType     `gorm:"type:text;not null" json:"type"`
	QuestionColor string        `gorm:"type:text" json:"question_color"`
	AnswerColor   string        `gorm:"type:text" json:"answer_color"`
	ButtonColor   string        `gorm:"type:text" json:"button_color"`
	ProgressBar   string        `gorm:"type:text" json:"progress_bar"`
	Background    string        `gorm:"type:text" json:"background"`
	IsCustomized  bool          `gorm:"not null;default:false" json:"is_customized"`
	Customized    Customization `gorm:"type:jsonb;not null;default:'{}'" json:"customized"`
	Version       int           `gorm:"not null" json:"version"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`
}

// Snapshot copies the theme's current state into a history record stamped at t.
func (th *Theme) Snapshot(t time.Time) *ThemeHistory {
	return &ThemeHistory{
		ThemeID:       th.ID,
		Type:          th.Type,
		QuestionColor: th.QuestionColor,
		AnswerColor:   th.AnswerColor,
		ButtonColor:   th.ButtonColor,
		ProgressBar:   th.ProgressBar,
		Background:    th.Background,
		IsCustomized:  th.IsCustomized,
		Customized:    th.Customized,
		Version:       th.Version,
		UpdatedAt:     t,
	}
}

// Customization holds company branding applied on top of a theme.
type Customization struct {
	CompanyLogo      string `json:"company_logo"`
	ShortTextMessage string `json:"short_text_message"`
	AvatarImage      string `json:"avatar_image"`
}

// Scan implements the sql.Scanner interface
func (c *Customization) Scan(value interface{}) error {
	if value == nil {
		*c = Customization{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, c)
	}

	return json.Unmarshal(data, c)
}

// Value implements the driver.Valuer interface
func (c Customization) Value() (driver.Value, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
