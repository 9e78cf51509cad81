package models

import "gorm.io/gorm"

// DiveTrip is the diving sub-booking tied to a Booking.
type DiveTrip struct {
	gorm.Model

	BookingID     string  `gorm:"column:booking_id;size:16;index" json:"booking_id"`
	DiveSite      string  `gorm:"column:dive_site;size:150" json:"dive_site"`
	NumberOfDives int     `gorm:"column:number_of_dives;default:1" json:"number_of_dives"`
	TotalAmount   float64 `gorm:"column:total_amount" json:"total_amount"`
}
