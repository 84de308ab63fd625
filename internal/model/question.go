// internal/model/question.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Question struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Type        string         `gorm:"type:text;not null" json:"type"`
	Label       string         `gorm:"type:text;not null" json:"label"`
	IsRequired  bool           `gorm:"not null;default:false" json:"is_required"`
	Validations pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"validations"`
	OnLoad      string         `gorm:"type:text;not null;default:''" json:"on_load"`
	PostSubmit  string         `gorm:"type:text;not null;default:''" json:"post_submit"`
	IsDeleted   bool           `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
