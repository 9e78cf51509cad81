package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travel-backend/controllers"
	"travel-backend/middleware"
	"travel-backend/models"
	"travel-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the API route tree.
func SetupRouter(
	bc *controllers.BookingController,
	hc *controllers.HotelController,
	dc *controllers.DestinationController,
	tc *controllers.TourController,
	dbc *controllers.DashboardController,
	ac *controllers.AuthController,
	authSvc *services.AuthService,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/forgot", ac.ForgotPassword)
		}
		api.POST("/reset-password", ac.ResetPassword)

		// Public submission gateway.
		api.POST("/bookings", bc.CreateBooking)
		api.POST("/booking-van-rental", bc.CreateVanRental)
		api.POST("/booking-dive-trip", bc.CreateDiveTrip)

		// Lookups.
		api.GET("/hotels", hc.GetHotels)
		api.GET("/destinations", dc.GetDestinations)
		api.GET("/tours", tc.GetTours)

		// Staff-only surface.
		staff := api.Group("")
		staff.Use(middleware.RequireAuth(authSvc))
		{
			staff.GET("/bookings", bc.GetBookings)
			staff.GET("/bookings/export",
				middleware.RequireRole(models.RoleOwner), bc.ExportBookings)
			staff.GET("/bookings/:booking_id", bc.GetBookingDetails)
			staff.PATCH("/bookings/:booking_id/confirm", bc.ConfirmBooking)
			staff.PATCH("/bookings/:booking_id/cancel", bc.CancelBooking)
			staff.PATCH("/bookings/:booking_id/reschedule", bc.RescheduleBooking)
			staff.GET("/dashboard/bookings", dbc.GetDashboard)
		}
	}

	return r
}
