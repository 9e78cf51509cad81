package models

import (
	"time"

	"gorm.io/gorm"
)

type TourPackage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string  `gorm:"size:150;uniqueIndex" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	PricePerHead float64 `gorm:"column:price_per_head" json:"price_per_head"`
}
