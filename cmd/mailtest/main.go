// Command mailtest sends a test message through the configured SMTP
// transport. Missing mail credentials are fatal here, before any network
// activity.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"travel-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file; using process environment")
	}

	if !utils.SMTPConfigured() {
		log.Fatal("SMTP_HOST, SMTP_PORT, SMTP_USERNAME and SMTP_PASSWORD must all be set")
	}

	to := os.Getenv("MAILTEST_TO")
	if to == "" {
		to = os.Getenv("SMTP_USERNAME")
	}

	if err := utils.SendBookingStatusEmail(to, "00-000", "confirmed", "Mail Test"); err != nil {
		log.Fatalf("test email failed: %v", err)
	}
	log.Printf("test email sent to %s", utils.MaskEmail(to))
}
