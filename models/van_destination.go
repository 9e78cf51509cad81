package models

import (
	"time"

	"gorm.io/gorm"
)

// VanDestination is a read-only lookup row from the booking flow's
// perspective. Rows are seeded at startup.
type VanDestination struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string  `gorm:"size:150;uniqueIndex" json:"name"`
	Region   string  `gorm:"size:150" json:"region,omitempty"`
	BaseRate float64 `gorm:"column:base_rate" json:"base_rate"`
}
