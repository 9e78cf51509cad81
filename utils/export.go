package utils

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"travel-backend/models"
)

var exportHeaders = []string{
	"Booking ID", "Customer", "Email", "Contact", "Type",
	"Arrival", "Departure", "Tourists", "Status",
}

// BookingsWorkbook builds an xlsx workbook with one row per booking, in the
// order given.
func BookingsWorkbook(bookings []models.Booking) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, b := range bookings {
		arrival := ""
		if b.ArrivalDate != nil {
			arrival = b.ArrivalDate.Format("2006-01-02")
		}
		departure := ""
		if b.DepartureDate != nil {
			departure = b.DepartureDate.Format("2006-01-02")
		}

		values := []interface{}{
			b.BookingID,
			fmt.Sprintf("%s %s", b.CustomerFirstName, b.CustomerLastName),
			b.CustomerEmail,
			b.CustomerContact,
			b.BookingType,
			arrival,
			departure,
			b.NumberOfTourist,
			b.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
