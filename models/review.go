package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a customer testimonial with an uploaded portrait.
type Review struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name     string    `json:"name" gorm:"not null"`
	Rating   int       `json:"rating" gorm:"not null"`
	Review   string    `json:"review" gorm:"type:text;not null"`
	Image    string    `json:"image" gorm:"type:text;not null"`
	FileID   string    `json:"-" gorm:"not null"`
	Status   bool      `json:"status" gorm:"default:true"` // admin approval toggle
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}
