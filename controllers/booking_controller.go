package controllers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	BookingID          string `json:"booking_id"`
	CustomerFirstName  string `json:"customer_first_name" binding:"required"`
	CustomerLastName   string `json:"customer_last_name" binding:"required"`
	CustomerEmail      string `json:"customer_email" binding:"required,email"`
	CustomerContact    string `json:"customer_contact"`
	BookingType        string `json:"booking_type" binding:"required"`
	BookingPreferences string `json:"booking_preferences"`
	ArrivalDate        string `json:"arrival_date"`
	DepartureDate      string `json:"departure_date"`
	NumberOfTourist    int    `json:"number_of_tourist"`
	Status             string `json:"status"`

	HotelID  *uint    `json:"hotel_id"`
	Services []string `json:"services"`
}

// CreateVanRentalRequest accepts either the pre-parsed API shape
// (destination_id + numeric fields) or the raw sub-form shape
// (choose_destination + currency/day strings), which is run through the
// assembler.
type CreateVanRentalRequest struct {
	BookingID     string `json:"booking_id" binding:"required"`
	DestinationID uint   `json:"destination_id"`

	RentalDays      int     `json:"rental_days"`
	TotalPrice      float64 `json:"total_price"`
	TripType        string  `json:"trip_type"`
	RentalStartDate string  `json:"rental_start_date"`
	RentalEndDate   string  `json:"rental_end_date"`
	Notes           string  `json:"notes"`

	ChooseDestination string `json:"choose_destination"`
	NumberOfDays      string `json:"number_of_days"`
	TotalAmount       string `json:"total_amount"`
}

type CreateDiveTripRequest struct {
	BookingID     string  `json:"booking_id" binding:"required"`
	DiveSite      string  `json:"dive_site" binding:"required"`
	NumberOfDives int     `json:"number_of_dives"`
	TotalAmount   float64 `json:"total_amount"`
}

type RescheduleRequest struct {
	ArrivalDate   string `json:"arrival_date" binding:"required"`
	DepartureDate string `json:"departure_date" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
	Assembler  *services.AssemblerService
}

func NewBookingController(svc *services.BookingService, asm *services.AssemblerService) *BookingController {
	return &BookingController{BookingSvc: svc, Assembler: asm}
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func isValidationError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "validation")
}

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key") || strings.Contains(lower, "1452")
}

// ---------------------------
// POST /api/bookings
// ---------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body", "details": err.Error()})
		return
	}

	arrival, err := parseDate(payload.ArrivalDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "arrival_date must be YYYY-MM-DD"})
		return
	}
	departure, err := parseDate(payload.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "departure_date must be YYYY-MM-DD"})
		return
	}

	booking := &models.Booking{
		BookingID:          strings.TrimSpace(payload.BookingID),
		CustomerFirstName:  strings.TrimSpace(payload.CustomerFirstName),
		CustomerLastName:   strings.TrimSpace(payload.CustomerLastName),
		CustomerEmail:      strings.TrimSpace(payload.CustomerEmail),
		CustomerContact:    strings.TrimSpace(payload.CustomerContact),
		BookingType:        strings.TrimSpace(payload.BookingType),
		BookingPreferences: payload.BookingPreferences,
		ArrivalDate:        arrival,
		DepartureDate:      departure,
		NumberOfTourist:    payload.NumberOfTourist,
		Status:             strings.TrimSpace(payload.Status),
		HotelID:            payload.HotelID,
	}

	created, err := ctrl.BookingSvc.Create(booking, payload.Services)
	if err != nil {
		log.Printf("CreateBooking error: %v", err)
		switch {
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case strings.Contains(err.Error(), "hotel_not_found"):
			utils.JSONErrorCode(c, http.StatusBadRequest, "error.hotelNotFound", "hotel_id does not match a known hotel")
		case isForeignKeyError(err):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "foreign key constraint", "details": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create booking", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"booking": created,
	})
}

// ---------------------------
// GET /api/bookings
// ---------------------------

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAllOrdered()
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.fetchBookings", "could not fetch bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// ---------------------------
// GET /api/bookings/:booking_id
// ---------------------------

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	ref := c.Param("booking_id")
	booking, err := ctrl.BookingSvc.GetByReference(ref)
	if err != nil {
		if strings.Contains(err.Error(), "booking_not_found") {
			utils.JSONErrorCode(c, http.StatusNotFound, "error.bookingNotFound", "no booking with this reference")
			return
		}
		log.Printf("GetBookingDetails error: %v", err)
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.fetchBookingFailed", "could not fetch booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// ---------------------------
// POST /api/booking-van-rental
// ---------------------------

func (ctrl *BookingController) CreateVanRental(c *gin.Context) {
	var payload CreateVanRentalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body", "details": err.Error()})
		return
	}

	var rental *models.VanRental

	if payload.DestinationID == 0 && strings.TrimSpace(payload.ChooseDestination) != "" {
		// Raw sub-form shape: run it through the assembler.
		start, err := parseDate(payload.RentalStartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "rental_start_date must be YYYY-MM-DD"})
			return
		}
		end, err := parseDate(payload.RentalEndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "rental_end_date must be YYYY-MM-DD"})
			return
		}

		assembled, err := ctrl.Assembler.AssembleVanRental(services.VanRentalForm{
			ChooseDestination: payload.ChooseDestination,
			TripType:          payload.TripType,
			Days:              payload.NumberOfDays,
			Amount:            payload.TotalAmount,
			StartDate:         start,
			EndDate:           end,
			Notes:             payload.Notes,
		})
		if err != nil {
			if strings.Contains(err.Error(), "destination_not_found") {
				utils.JSONErrorCode(c, http.StatusBadRequest, "error.destinationNotFound", "chosen destination does not exist")
				return
			}
			if isValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			log.Printf("AssembleVanRental error: %v", err)
			utils.JSONErrorCode(c, http.StatusInternalServerError, "error.internal", "could not assemble van rental")
			return
		}
		rental = assembled
	} else {
		start, err := parseDate(payload.RentalStartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "rental_start_date must be YYYY-MM-DD"})
			return
		}
		end, err := parseDate(payload.RentalEndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "rental_end_date must be YYYY-MM-DD"})
			return
		}
		rental = &models.VanRental{
			VanDestinationID: payload.DestinationID,
			TripType:         strings.TrimSpace(payload.TripType),
			NumberOfDays:     payload.RentalDays,
			TotalAmount:      payload.TotalPrice,
			RentalStartDate:  start,
			RentalEndDate:    end,
			Notes:            strings.TrimSpace(payload.Notes),
		}
	}

	if rental == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "destination_id or choose_destination is required"})
		return
	}

	rental.BookingID = strings.TrimSpace(payload.BookingID)

	if err := ctrl.BookingSvc.CreateVanRental(rental); err != nil {
		log.Printf("CreateVanRental error: %v", err)
		switch {
		case strings.Contains(err.Error(), "booking_not_found"):
			utils.JSONErrorCode(c, http.StatusNotFound, "error.bookingNotFound", "no booking with this reference")
		case strings.Contains(err.Error(), "destination_not_found"):
			utils.JSONErrorCode(c, http.StatusBadRequest, "error.destinationNotFound", "destination_id does not match a known destination")
		case isForeignKeyError(err):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "foreign key constraint", "details": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create van rental", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": rental})
}

// ---------------------------
// POST /api/booking-dive-trip
// ---------------------------

func (ctrl *BookingController) CreateDiveTrip(c *gin.Context) {
	var payload CreateDiveTripRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body", "details": err.Error()})
		return
	}

	trip := &models.DiveTrip{
		BookingID:     strings.TrimSpace(payload.BookingID),
		DiveSite:      strings.TrimSpace(payload.DiveSite),
		NumberOfDives: payload.NumberOfDives,
		TotalAmount:   payload.TotalAmount,
	}

	if err := ctrl.BookingSvc.CreateDiveTrip(trip); err != nil {
		log.Printf("CreateDiveTrip error: %v", err)
		switch {
		case strings.Contains(err.Error(), "booking_not_found"):
			utils.JSONErrorCode(c, http.StatusNotFound, "error.bookingNotFound", "no booking with this reference")
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create dive trip", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": trip})
}

// ---------------------------
// PATCH /api/bookings/:booking_id/{confirm,cancel,reschedule}
// ---------------------------

func (ctrl *BookingController) updateStatus(c *gin.Context, status string, resched *services.Reschedule) {
	ref := c.Param("booking_id")

	booking, err := ctrl.BookingSvc.UpdateStatus(ref, status, resched)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "booking_not_found"):
			utils.JSONErrorCode(c, http.StatusNotFound, "error.bookingNotFound", "no booking with this reference")
		case strings.Contains(err.Error(), "booking_cancelled"):
			utils.JSONErrorCode(c, http.StatusConflict, "error.bookingCancelled", "a cancelled booking cannot change status")
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			log.Printf("UpdateStatus %s -> %s error: %v", ref, status, err)
			utils.JSONErrorCode(c, http.StatusInternalServerError, "error.updateStatusFailed", "could not update booking status")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	ctrl.updateStatus(c, models.StatusConfirmed, nil)
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	ctrl.updateStatus(c, models.StatusCancelled, nil)
}

func (ctrl *BookingController) RescheduleBooking(c *gin.Context) {
	var payload RescheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "arrival_date and departure_date are required"})
		return
	}

	arrival, err := time.Parse("2006-01-02", payload.ArrivalDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "arrival_date must be YYYY-MM-DD"})
		return
	}
	departure, err := time.Parse("2006-01-02", payload.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "departure_date must be YYYY-MM-DD"})
		return
	}

	ctrl.updateStatus(c, models.StatusRescheduled, &services.Reschedule{
		ArrivalDate:   arrival,
		DepartureDate: departure,
	})
}

// ---------------------------
// GET /api/bookings/export
// ---------------------------

func (ctrl *BookingController) ExportBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAllOrdered()
	if err != nil {
		log.Printf("ExportBookings fetch error: %v", err)
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.fetchBookings", "could not fetch bookings")
		return
	}

	workbook, err := utils.BookingsWorkbook(bookings)
	if err != nil {
		log.Printf("ExportBookings workbook error: %v", err)
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.exportFailed", "could not build export file")
		return
	}

	var buf bytes.Buffer
	if _, err := workbook.WriteTo(&buf); err != nil {
		log.Printf("ExportBookings write error: %v", err)
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.exportFailed", "could not write export file")
		return
	}

	filename := "bookings-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes(),
	)
}
