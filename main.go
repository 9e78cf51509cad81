package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/routes"
	"travel-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Session tokens are signed with this secret; refuse to start without it.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue session tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	bookingService := services.NewBookingService(db)
	assemblerService := services.NewAssemblerService(db)
	hotelService := services.NewHotelService(db)
	destinationService := services.NewDestinationService(db)
	tourService := services.NewTourService(db)
	dashboardService := services.NewDashboardService(db)
	authService := services.NewAuthService(db, []byte(jwtSecret))
	if os.Getenv("LOGIN_IDENTIFIER") == "email" {
		authService.IdentifierField = services.IdentifierEmail
	}
	if os.Getenv("STRICT_AMOUNT_PARSING") == "true" {
		assemblerService.Strict = true
	}

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService, assemblerService)
	hotelController := controllers.NewHotelController(hotelService)
	destinationController := controllers.NewDestinationController(destinationService)
	tourController := controllers.NewTourController(tourService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	authController := controllers.NewAuthController(authService)

	router := routes.SetupRouter(
		bookingController,
		hotelController,
		destinationController,
		tourController,
		dashboardController,
		authController,
		authService,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal, then shut down gracefully.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
