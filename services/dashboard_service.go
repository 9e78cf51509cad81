package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"travel-backend/models"

	"gorm.io/gorm"
)

// RowAction describes one of the per-row controls the dashboard shows.
type RowAction struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Path   string `json:"path"`
}

// DashboardRow is one rendered table row for a booking.
type DashboardRow struct {
	BookingID string      `json:"booking_id"`
	Name      string      `json:"name"`
	Services  string      `json:"services"`
	VanRental bool        `json:"van_rental"`
	Arrival   string      `json:"arrival"`
	Departure string      `json:"departure"`
	Hotel     string      `json:"hotel"`
	Price     float64     `json:"price"`
	Contact   string      `json:"contact"`
	Email     string      `json:"email"`
	Status    string      `json:"status"`
	Actions   []RowAction `json:"actions"`
}

// DashboardService renders bookings into table rows. Each Render call fully
// replaces the previously rendered rows, so re-rendering the same bookings is
// idempotent and never duplicates rows.
type DashboardService struct {
	DB *gorm.DB

	mu   sync.Mutex
	rows []DashboardRow
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

func rowActions(ref string) []RowAction {
	base := "/api/bookings/" + ref
	return []RowAction{
		{Label: "Confirm", Method: "PATCH", Path: base + "/confirm"},
		{Label: "Cancel", Method: "PATCH", Path: base + "/cancel"},
		{Label: "Reschedule", Method: "PATCH", Path: base + "/reschedule"},
	}
}

func servicesLabel(b *models.Booking) string {
	if len(b.Services) > 0 {
		var labels []string
		if err := json.Unmarshal(b.Services, &labels); err == nil && len(labels) > 0 {
			return strings.Join(labels, " + ")
		}
	}
	return b.BookingType
}

func buildRow(b *models.Booking) DashboardRow {
	arrival := ""
	if b.ArrivalDate != nil {
		arrival = b.ArrivalDate.Format("2006-01-02")
	}
	departure := ""
	if b.DepartureDate != nil {
		departure = b.DepartureDate.Format("2006-01-02")
	}

	hotel := ""
	if b.HotelID != nil && b.Hotel.ID != 0 {
		hotel = b.Hotel.Name
	}

	price := float64(0)
	for _, vr := range b.VanRentals {
		price += vr.TotalAmount
	}
	for _, dt := range b.DiveTrips {
		price += dt.TotalAmount
	}

	return DashboardRow{
		BookingID: b.BookingID,
		Name:      strings.TrimSpace(b.CustomerFirstName + " " + b.CustomerLastName),
		Services:  servicesLabel(b),
		VanRental: len(b.VanRentals) > 0,
		Arrival:   arrival,
		Departure: departure,
		Hotel:     hotel,
		Price:     price,
		Contact:   b.CustomerContact,
		Email:     b.CustomerEmail,
		Status:    b.Status,
		Actions:   rowActions(b.BookingID),
	}
}

// Render replaces the rendered rows with one row per booking, preserving the
// input order. It does not mutate the bookings.
func (s *DashboardService) Render(bookings []models.Booking) []DashboardRow {
	rows := make([]DashboardRow, 0, len(bookings))
	for i := range bookings {
		rows = append(rows, buildRow(&bookings[i]))
	}

	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()

	return rows
}

// Rows returns the most recently rendered rows.
func (s *DashboardService) Rows() []DashboardRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

// Refresh fetches current bookings and re-renders the dashboard.
func (s *DashboardService) Refresh() ([]DashboardRow, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("Hotel").
		Preload("VanRentals.Destination").
		Preload("DiveTrips").
		Order("id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for dashboard: %w", err)
	}
	return s.Render(bookings), nil
}
