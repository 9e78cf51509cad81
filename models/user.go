package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff roles.
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255" json:"full_name"`
	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role     string `gorm:"size:32;index" json:"role"`

	ResetToken        *string    `gorm:"size:128;index" json:"-"`
	ResetTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
