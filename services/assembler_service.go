package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"travel-backend/models"

	"gorm.io/gorm"
)

// AssemblerService normalizes raw sub-form values into persistence-ready
// sub-booking records.
//
// By default it keeps the legacy permissive behavior: malformed currency
// strings become 0 and malformed day counts become 1. With Strict set, a
// malformed amount is a validation error instead.
type AssemblerService struct {
	DB     *gorm.DB
	Strict bool
}

func NewAssemblerService(db *gorm.DB) *AssemblerService {
	return &AssemblerService{DB: db}
}

// VanRentalForm carries the raw values collected across the van-rental
// sub-form screens.
type VanRentalForm struct {
	ChooseDestination string
	TripType          string
	Days              string
	Amount            string
	StartDate         *time.Time
	EndDate           *time.Time
	Notes             string
}

// ParseCurrencyAmount parses a currency-formatted string such as "₱3,000.00"
// by stripping the symbol and thousands separators. Malformed input yields 0.
func ParseCurrencyAmount(raw string) float64 {
	v, err := parseCurrencyAmount(raw)
	if err != nil {
		return 0
	}
	return v
}

func parseCurrencyAmount(raw string) (float64, error) {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric content in %q", raw)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// ParseDayCount parses a day-count string. Absent or non-numeric input
// defaults to 1; values below 1 are clamped to 1.
func ParseDayCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// AssembleVanRental produces a persistence-ready van-rental record from the
// raw form. A form with no destination selected yields (nil, nil): the
// optional component was simply not requested. A destination label that does
// not resolve to a seeded destination row is an error.
func (s *AssemblerService) AssembleVanRental(form VanRentalForm) (*models.VanRental, error) {
	label := strings.TrimSpace(form.ChooseDestination)
	if label == "" {
		return nil, nil
	}

	var dest models.VanDestination
	if err := s.DB.Where("LOWER(name) = ?", strings.ToLower(label)).First(&dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("destination_not_found")
		}
		return nil, fmt.Errorf("failed to resolve destination: %w", err)
	}

	amount := float64(0)
	if s.Strict {
		v, err := parseCurrencyAmount(form.Amount)
		if err != nil {
			return nil, fmt.Errorf("validation: total amount %q is not a valid currency value", form.Amount)
		}
		amount = v
	} else {
		amount = ParseCurrencyAmount(form.Amount)
	}

	return &models.VanRental{
		VanDestinationID:  dest.ID,
		ChooseDestination: dest.Name,
		TripType:          strings.TrimSpace(form.TripType),
		NumberOfDays:      ParseDayCount(form.Days),
		TotalAmount:       amount,
		RentalStartDate:   form.StartDate,
		RentalEndDate:     form.EndDate,
		Notes:             strings.TrimSpace(form.Notes),
	}, nil
}
