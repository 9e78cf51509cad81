package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking statuses. A booking is never hard-deleted in the normal flow;
// cancellation is a status change.
const (
	StatusPending     = "pending"
	StatusConfirmed   = "confirmed"
	StatusCancelled   = "cancelled"
	StatusRescheduled = "rescheduled"
)

// Booking types as submitted by the booking form.
const (
	TypePackageOnly = "package_only"
	TypeTourOnly    = "tour_only"
	TypeHotelOnly   = "hotel_only"
	TypeVanRental   = "van_rental"
	TypeDiving      = "diving"
	TypeCustomCombo = "custom_combo"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Human-readable reference in the form "YY-NNN", e.g. "25-000".
	BookingID string `gorm:"column:booking_id;uniqueIndex;size:16" json:"booking_id"`

	CustomerFirstName string `gorm:"column:customer_first_name;size:120" json:"customer_first_name"`
	CustomerLastName  string `gorm:"column:customer_last_name;size:120" json:"customer_last_name"`
	CustomerEmail     string `gorm:"column:customer_email;size:150;index" json:"customer_email"`
	CustomerContact   string `gorm:"column:customer_contact;size:50" json:"customer_contact"`

	BookingType        string `gorm:"column:booking_type;size:32" json:"booking_type"`
	BookingPreferences string `gorm:"column:booking_preferences;type:text" json:"booking_preferences"`

	// Labels of the services combined in this booking, e.g. ["Hotel","Van Rental"].
	Services datatypes.JSON `gorm:"column:services" json:"services,omitempty"`

	ArrivalDate   *time.Time `gorm:"column:arrival_date" json:"arrival_date,omitempty"`
	DepartureDate *time.Time `gorm:"column:departure_date" json:"departure_date,omitempty"`

	NumberOfTourist int    `gorm:"column:number_of_tourist;default:1" json:"number_of_tourist"`
	Status          string `gorm:"column:status;size:32;default:pending;index" json:"status"`

	HotelID *uint `gorm:"column:hotel_id;index" json:"hotel_id,omitempty"`
	Hotel   Hotel `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`

	VanRentals []VanRental `gorm:"foreignKey:BookingID;references:BookingID" json:"van_rentals,omitempty"`
	DiveTrips  []DiveTrip  `gorm:"foreignKey:BookingID;references:BookingID" json:"dive_trips,omitempty"`
}
