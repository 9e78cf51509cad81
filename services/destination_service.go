package services

import (
	"fmt"

	"travel-backend/models"

	"gorm.io/gorm"
)

type DestinationService struct {
	DB *gorm.DB
}

func NewDestinationService(db *gorm.DB) *DestinationService {
	return &DestinationService{DB: db}
}

func (s *DestinationService) List() ([]models.VanDestination, error) {
	var destinations []models.VanDestination
	if err := s.DB.Order("name ASC").Find(&destinations).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch destinations: %w", err)
	}
	return destinations, nil
}
