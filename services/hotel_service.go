package services

import (
	"fmt"

	"travel-backend/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) List() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch hotels: %w", err)
	}
	return hotels, nil
}
