package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.SeedDatabase(db)

	bookingSvc := services.NewBookingService(db)
	assemblerSvc := services.NewAssemblerService(db)
	authSvc := services.NewAuthService(db, []byte("test-secret"))

	router := SetupRouter(
		controllers.NewBookingController(bookingSvc, assemblerSvc),
		controllers.NewHotelController(services.NewHotelService(db)),
		controllers.NewDestinationController(services.NewDestinationService(db)),
		controllers.NewTourController(services.NewTourService(db)),
		controllers.NewDashboardController(services.NewDashboardService(db)),
		controllers.NewAuthController(authSvc),
		authSvc,
	)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func loginAs(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestGetHotels(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/hotels", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	hotels, ok := body["hotels"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, hotels)
}

func TestCreateBookingAndVanRental(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", map[string]any{
		"customer_first_name": "Ana",
		"customer_last_name":  "Reyes",
		"customer_email":      "ana@example.com",
		"customer_contact":    "+63 912 000 0000",
		"booking_type":        "package_only",
		"arrival_date":        "2025-07-01",
		"departure_date":      "2025-07-04",
		"number_of_tourist":   4,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	booking, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	ref, _ := booking["booking_id"].(string)
	assert.Regexp(t, `^\d{2}-\d{3}$`, ref)
	assert.Equal(t, "pending", booking["status"])

	// Raw sub-form shape goes through the assembler.
	w = doJSON(t, router, http.MethodPost, "/api/booking-van-rental", map[string]any{
		"booking_id":         ref,
		"choose_destination": "White Beach",
		"trip_type":          "roundtrip",
		"number_of_days":     "2",
		"total_amount":       "₱3,000.00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body = decodeBody(t, w)
	rental, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), rental["number_of_days"])
	assert.Equal(t, float64(3000), rental["total_amount"])
	assert.Equal(t, "roundtrip", rental["trip_type"])
	assert.Equal(t, "White Beach", rental["choose_destination"])
}

func TestCreateVanRentalUnknownDestinationID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", map[string]any{
		"customer_first_name": "Ben",
		"customer_last_name":  "Cruz",
		"customer_email":      "ben@example.com",
		"booking_type":        "van_rental",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decodeBody(t, w)["booking"].(map[string]any)

	w = doJSON(t, router, http.MethodPost, "/api/booking-van-rental", map[string]any{
		"booking_id":     booking["booking_id"],
		"destination_id": 4242,
		"rental_days":    2,
		"total_price":    3000,
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", map[string]any{
		"customer_first_name": "Ana",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaffRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/bookings", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/dashboard/bookings", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := loginAs(t, router, "staff", "staff123")
	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRedirectPaths(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "owner", "password": "owner123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/owner/dashboard", decodeBody(t, w)["redirect_path"])

	w = doJSON(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "staff", "password": "staff123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/staff/dashboard", decodeBody(t, w)["redirect_path"])

	w = doJSON(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "owner", "password": "staff123"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decodeBody(t, w)["error"])
}

func TestExportRequiresOwnerRole(t *testing.T) {
	router, _ := newTestRouter(t)

	staffToken := loginAs(t, router, "staff", "staff123")
	w := doJSON(t, router, http.MethodGet, "/api/bookings/export", nil, staffToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	ownerToken := loginAs(t, router, "owner", "owner123")
	w = doJSON(t, router, http.MethodGet, "/api/bookings/export", nil, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestResetPasswordValidationBeforeLookup(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/reset-password", map[string]string{
		"token":            "some-token",
		"password":         "newpass99",
		"confirm_password": "different",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "passwords do not match", decodeBody(t, w)["error"])

	w = doJSON(t, router, http.MethodPost, "/api/reset-password", map[string]string{
		"token":    "some-token",
		"password": "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/reset-password", map[string]string{
		"password": "newpass99",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardRows(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAs(t, router, "owner", "owner123")

	w := doJSON(t, router, http.MethodPost, "/api/bookings", map[string]any{
		"customer_first_name": "Ana",
		"customer_last_name":  "Reyes",
		"customer_email":      "ana@example.com",
		"booking_type":        "tour_only",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/dashboard/bookings", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	rows, ok := decodeBody(t, w)["rows"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)

	row := rows[0].(map[string]any)
	assert.Equal(t, "Ana Reyes", row["name"])
	actions := row["actions"].([]any)
	assert.Len(t, actions, 3)
}
