package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travel-backend/config"
	"travel-backend/models"
)

// newTestDB opens a fresh in-memory database migrated with the full schema.
// The DSN is namespaced per test so parallel tests don't share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, config.Migrate(db))
	return db
}

func seedDestinations(t *testing.T, db *gorm.DB) {
	t.Helper()
	destinations := []models.VanDestination{
		{Name: "White Beach", Region: "Puerto Galera", BaseRate: 1500},
		{Name: "Tamaraw Falls", Region: "Puerto Galera", BaseRate: 2000},
	}
	require.NoError(t, db.Create(&destinations).Error)
}

func mustCreateBooking(t *testing.T, svc *BookingService, first, last, email string) *models.Booking {
	t.Helper()
	booking, err := svc.Create(&models.Booking{
		CustomerFirstName: first,
		CustomerLastName:  last,
		CustomerEmail:     email,
		BookingType:       models.TypePackageOnly,
	}, nil)
	require.NoError(t, err)
	return booking
}
