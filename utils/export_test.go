package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backend/models"
)

func TestBookingsWorkbook(t *testing.T) {
	arrival := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	f, err := BookingsWorkbook([]models.Booking{
		{
			BookingID:         "25-000",
			CustomerFirstName: "Ana",
			CustomerLastName:  "Reyes",
			CustomerEmail:     "ana@example.com",
			BookingType:       models.TypePackageOnly,
			ArrivalDate:       &arrival,
			NumberOfTourist:   4,
			Status:            models.StatusConfirmed,
		},
		{
			BookingID:         "25-001",
			CustomerFirstName: "Ben",
			CustomerLastName:  "Cruz",
			Status:            models.StatusPending,
		},
	})
	require.NoError(t, err)

	sheet := f.GetSheetName(0)

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Booking ID", header)

	ref, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "25-000", ref)

	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes", name)

	arrivalCell, err := f.GetCellValue(sheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", arrivalCell)

	status, err := f.GetCellValue(sheet, "I3")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, status)

	// No departure set on the second row.
	departure, err := f.GetCellValue(sheet, "G3")
	require.NoError(t, err)
	assert.Empty(t, departure)
}

func TestBookingsWorkbookEmpty(t *testing.T) {
	f, err := BookingsWorkbook(nil)
	require.NoError(t, err)

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row only")
	assert.Equal(t, exportHeaders, rows[0])
}
