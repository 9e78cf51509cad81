package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"travel-backend/models"
	"travel-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB with the booking aggregate logic.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// NextBookingID returns the next reference in the "YY-NNN" sequence for the
// given year, starting at "25-000".
func (s *BookingService) NextBookingID(now time.Time) (string, error) {
	prefix := now.Format("06") + "-"

	var count int64
	if err := s.DB.Model(&models.Booking{}).
		Where("booking_id LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to count bookings for %s: %w", prefix, err)
	}

	return fmt.Sprintf("%s%03d", prefix, count), nil
}

func validateBooking(b *models.Booking) error {
	required := map[string]string{
		"customer_first_name": b.CustomerFirstName,
		"customer_last_name":  b.CustomerLastName,
		"customer_email":      b.CustomerEmail,
		"booking_type":        b.BookingType,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("validation: %s is required", field)
		}
	}
	return nil
}

// Create persists a new booking. When no reference is supplied one is
// generated; on a unique collision generation is retried.
func (s *BookingService) Create(b *models.Booking, services []string) (*models.Booking, error) {
	if err := validateBooking(b); err != nil {
		return nil, err
	}

	if b.Status == "" {
		b.Status = models.StatusPending
	}
	if b.NumberOfTourist < 1 {
		b.NumberOfTourist = 1
	}

	if len(services) > 0 {
		raw, err := json.Marshal(services)
		if err != nil {
			return nil, fmt.Errorf("failed to encode services: %w", err)
		}
		b.Services = datatypes.JSON(raw)
	}

	if b.HotelID != nil {
		var hotel models.Hotel
		if err := s.DB.First(&hotel, *b.HotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("hotel_not_found")
			}
			return nil, fmt.Errorf("failed to check hotel %d: %w", *b.HotelID, err)
		}
	}

	generated := strings.TrimSpace(b.BookingID) == ""
	maxRetries := 5
	var createErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if generated {
			ref, err := s.NextBookingID(time.Now())
			if err != nil {
				return nil, err
			}
			b.BookingID = ref
		}

		createErr = s.DB.Create(b).Error
		if createErr == nil {
			break
		}

		lc := strings.ToLower(createErr.Error())
		if generated && (strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")) {
			log.Printf("booking_id collision on %s (attempt %d) - retrying", b.BookingID, attempt+1)
			continue
		}
		return nil, fmt.Errorf("failed to create booking: %w", createErr)
	}
	if createErr != nil {
		return nil, fmt.Errorf("failed to create booking after retries: %w", createErr)
	}

	return b, nil
}

// GetAllOrdered returns bookings in creation order with sub-bookings loaded.
func (s *BookingService) GetAllOrdered() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("Hotel").
		Preload("VanRentals.Destination").
		Preload("DiveTrips").
		Order("id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// GetByReference loads one booking by its "YY-NNN" reference.
func (s *BookingService) GetByReference(ref string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Hotel").
		Preload("VanRentals.Destination").
		Preload("DiveTrips").
		Where("booking_id = ?", ref).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", ref, err)
	}
	return &booking, nil
}

// CreateVanRental inserts a van-rental sub-booking after checking that both
// the parent booking and the destination exist.
func (s *BookingService) CreateVanRental(vr *models.VanRental) error {
	if _, err := s.GetByReference(vr.BookingID); err != nil {
		return err
	}

	var dest models.VanDestination
	if err := s.DB.First(&dest, vr.VanDestinationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("destination_not_found")
		}
		return fmt.Errorf("failed to check destination %d: %w", vr.VanDestinationID, err)
	}

	if vr.ChooseDestination == "" {
		vr.ChooseDestination = dest.Name
	}
	if vr.NumberOfDays < 1 {
		vr.NumberOfDays = 1
	}

	if err := s.DB.Create(vr).Error; err != nil {
		return fmt.Errorf("failed to create van rental: %w", err)
	}
	return nil
}

// CreateDiveTrip inserts a diving sub-booking for an existing booking.
func (s *BookingService) CreateDiveTrip(dt *models.DiveTrip) error {
	if _, err := s.GetByReference(dt.BookingID); err != nil {
		return err
	}
	if strings.TrimSpace(dt.DiveSite) == "" {
		return errors.New("validation: dive_site is required")
	}
	if dt.NumberOfDives < 1 {
		dt.NumberOfDives = 1
	}
	if err := s.DB.Create(dt).Error; err != nil {
		return fmt.Errorf("failed to create dive trip: %w", err)
	}
	return nil
}

// Reschedule carries the replacement dates for a reschedule action.
type Reschedule struct {
	ArrivalDate   time.Time
	DepartureDate time.Time
}

// UpdateStatus applies a staff action (confirm / cancel / reschedule) to a
// booking. Cancelled is terminal. A status-change email is sent best-effort.
func (s *BookingService) UpdateStatus(ref, newStatus string, resched *Reschedule) (*models.Booking, error) {
	booking, err := s.GetByReference(ref)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.StatusCancelled {
		return nil, errors.New("booking_cancelled")
	}

	updates := map[string]interface{}{"status": newStatus}

	switch newStatus {
	case models.StatusConfirmed, models.StatusCancelled:
		// no extra fields
	case models.StatusRescheduled:
		if resched == nil {
			return nil, errors.New("validation: reschedule requires new arrival and departure dates")
		}
		if !resched.DepartureDate.After(resched.ArrivalDate) {
			return nil, errors.New("validation: departure_date must be after arrival_date")
		}
		updates["arrival_date"] = resched.ArrivalDate
		updates["departure_date"] = resched.DepartureDate
	default:
		return nil, errors.New("invalid_status")
	}

	if err := s.DB.Model(booking).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", ref, err)
	}

	if mailErr := utils.SendBookingStatusEmail(
		booking.CustomerEmail,
		booking.BookingID,
		newStatus,
		strings.TrimSpace(booking.CustomerFirstName+" "+booking.CustomerLastName),
	); mailErr != nil {
		log.Printf("status email for %s failed: %v", booking.BookingID, mailErr)
	}

	return booking, nil
}
