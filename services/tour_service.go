package services

import (
	"fmt"

	"travel-backend/models"

	"gorm.io/gorm"
)

type TourService struct {
	DB *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService {
	return &TourService{DB: db}
}

func (s *TourService) List() ([]models.TourPackage, error) {
	var tours []models.TourPackage
	if err := s.DB.Order("name ASC").Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tour packages: %w", err)
	}
	return tours, nil
}
