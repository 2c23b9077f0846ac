package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EditImage is a before/after retouching showcase. The two remote assets
// live and die together: a row never holds only one of the pair.
type EditImage struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Category     string    `json:"category" gorm:"not null;index"`
	BeforeImage  string    `json:"beforeImage" gorm:"type:text;not null"`
	AfterImage   string    `json:"afterImage" gorm:"type:text;not null"`
	BeforeFileID string    `json:"-" gorm:"not null"`
	AfterFileID  string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (e *EditImage) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (EditImage) TableName() string {
	return "edit_images"
}
