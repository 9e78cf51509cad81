package models

import (
	"time"

	"gorm.io/gorm"
)

type Hotel struct {
	ID        uint           `gorm:"primaryKey" json:"hotel_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name              string  `gorm:"size:150;uniqueIndex" json:"name"`
	Description       string  `gorm:"type:text" json:"description"`
	BasePricePerNight float64 `gorm:"column:base_price_per_night" json:"base_price_per_night"`
}
