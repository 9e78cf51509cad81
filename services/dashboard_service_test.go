package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backend/models"
)

func sampleBookings() []models.Booking {
	arrival := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	departure := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)

	return []models.Booking{
		{
			BookingID:         "25-000",
			CustomerFirstName: "Ana",
			CustomerLastName:  "Reyes",
			CustomerEmail:     "ana@example.com",
			CustomerContact:   "+63 912 000 0000",
			BookingType:       models.TypePackageOnly,
			ArrivalDate:       &arrival,
			DepartureDate:     &departure,
			Status:            models.StatusPending,
			VanRentals: []models.VanRental{
				{BookingID: "25-000", TripType: "roundtrip", NumberOfDays: 2, TotalAmount: 3000},
			},
		},
		{
			BookingID:         "25-001",
			CustomerFirstName: "Ben",
			CustomerLastName:  "Cruz",
			CustomerEmail:     "ben@example.com",
			BookingType:       models.TypeDiving,
			Status:            models.StatusConfirmed,
			DiveTrips: []models.DiveTrip{
				{BookingID: "25-001", DiveSite: "Coral Garden", TotalAmount: 2200},
			},
		},
	}
}

func TestRenderColumns(t *testing.T) {
	dash := NewDashboardService(nil)
	rows := dash.Render(sampleBookings())
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "25-000", first.BookingID)
	assert.Equal(t, "Ana Reyes", first.Name)
	assert.True(t, first.VanRental)
	assert.Equal(t, "2025-07-01", first.Arrival)
	assert.Equal(t, "2025-07-04", first.Departure)
	assert.Equal(t, 3000.0, first.Price)
	assert.Equal(t, "+63 912 000 0000", first.Contact)
	assert.Equal(t, "ana@example.com", first.Email)

	require.Len(t, first.Actions, 3)
	assert.Equal(t, "Confirm", first.Actions[0].Label)
	assert.Equal(t, "PATCH", first.Actions[0].Method)
	assert.Equal(t, "/api/bookings/25-000/confirm", first.Actions[0].Path)
	assert.Equal(t, "/api/bookings/25-000/cancel", first.Actions[1].Path)
	assert.Equal(t, "/api/bookings/25-000/reschedule", first.Actions[2].Path)

	second := rows[1]
	assert.False(t, second.VanRental)
	assert.Equal(t, 2200.0, second.Price)
	assert.Empty(t, second.Arrival)
}

func TestRenderIsIdempotent(t *testing.T) {
	dash := NewDashboardService(nil)
	bookings := sampleBookings()

	first := dash.Render(bookings)
	second := dash.Render(bookings)

	assert.Equal(t, first, second, "re-rendering the same bookings yields the identical table")
	assert.Len(t, dash.Rows(), len(bookings), "rows are replaced, never appended")
}

func TestRenderPreservesOrder(t *testing.T) {
	dash := NewDashboardService(nil)
	bookings := sampleBookings()

	rows := dash.Render(bookings)
	for i := range bookings {
		assert.Equal(t, bookings[i].BookingID, rows[i].BookingID)
	}

	// Reversed input order shows up reversed in the output.
	reversed := []models.Booking{bookings[1], bookings[0]}
	rows = dash.Render(reversed)
	assert.Equal(t, "25-001", rows[0].BookingID)
	assert.Equal(t, "25-000", rows[1].BookingID)
}

func TestRefreshRendersFromDatabase(t *testing.T) {
	db := newTestDB(t)
	seedDestinations(t, db)
	svc := NewBookingService(db)
	dash := NewDashboardService(db)

	first := mustCreateBooking(t, svc, "Ana", "Reyes", "ana@example.com")
	second := mustCreateBooking(t, svc, "Ben", "Cruz", "ben@example.com")

	rows, err := dash.Refresh()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.BookingID, rows[0].BookingID)
	assert.Equal(t, second.BookingID, rows[1].BookingID)

	rows, err = dash.Refresh()
	require.NoError(t, err)
	assert.Len(t, rows, 2, "refreshing again does not duplicate rows")
}

func TestServicesLabelFallsBackToBookingType(t *testing.T) {
	dash := NewDashboardService(nil)
	rows := dash.Render([]models.Booking{{
		BookingID:         "25-002",
		CustomerFirstName: "Cara",
		CustomerLastName:  "Lim",
		BookingType:       models.TypeTourOnly,
	}})
	require.Len(t, rows, 1)
	assert.Equal(t, models.TypeTourOnly, rows[0].Services)
}
