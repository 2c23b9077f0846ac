package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin represents a dashboard administrator.
type Admin struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name     string    `json:"name" gorm:"not null"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null"`
	Password string    `json:"-" gorm:"not null"` // bcrypt hash, never exposed
	Image    string    `json:"image" gorm:"type:text;not null"`
	// FileID is the Asset Store handle for the avatar, kept only so the
	// remote object can be replaced or destroyed with the record.
	FileID    string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Admin) TableName() string {
	return "admins"
}

// AdminLoginResponse is the response after login
type AdminLoginResponse struct {
	Admin Admin  `json:"admin"`
	Token string `json:"token"`
}
