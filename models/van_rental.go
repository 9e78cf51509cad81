package models

import (
	"time"

	"gorm.io/gorm"
)

// VanRental is a sub-booking owned by exactly one Booking via booking_id.
// van_destination_id must resolve to an existing destination row or the
// gateway rejects the record.
type VanRental struct {
	gorm.Model

	BookingID        string `gorm:"column:booking_id;size:16;index" json:"booking_id"`
	VanDestinationID uint   `gorm:"column:van_destination_id;index" json:"destination_id"`

	TripType          string  `gorm:"column:trip_type;size:32" json:"trip_type"`
	NumberOfDays      int     `gorm:"column:number_of_days;default:1" json:"number_of_days"`
	TotalAmount       float64 `gorm:"column:total_amount" json:"total_amount"`
	ChooseDestination string  `gorm:"column:choose_destination;size:150" json:"choose_destination"`

	RentalStartDate *time.Time `gorm:"column:rental_start_date" json:"rental_start_date,omitempty"`
	RentalEndDate   *time.Time `gorm:"column:rental_end_date" json:"rental_end_date,omitempty"`
	Notes           string     `gorm:"column:notes;type:text" json:"notes,omitempty"`

	Destination VanDestination `gorm:"foreignKey:VanDestinationID;references:ID" json:"destination,omitempty"`
}
