package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"travel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// ResolveMySQLDSN builds the DSN from MYSQL_URL/DATABASE_URL or the discrete
// DB_* variables. Shared with the diagnostic harness.
func ResolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "travel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.VanDestination{},
		&models.TourPackage{},
		&models.Booking{},
		&models.VanRental{},
		&models.DiveTrip{},
	)
}

func seedUser(db *gorm.DB, fullName, username, email, password, role string) {
	var count int64
	db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default %s password: %v", role, err)
		return
	}
	user := models.User{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("warning: failed to seed %s user: %v", role, err)
		return
	}
	log.Printf("Default %s user seeded", role)
}

// SeedDatabase ensures the default staff accounts and lookup tables exist.
func SeedDatabase(db *gorm.DB) {
	seedUser(db, "Agency Owner", "owner", "owner@travel.local", "owner123", models.RoleOwner)
	seedUser(db, "Front Desk Staff", "staff", "staff@travel.local", "staff123", models.RoleStaff)

	var hotelCount int64
	db.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotels := []models.Hotel{
			{Name: "Seashore Inn", Description: "Beachfront rooms near the pier", BasePricePerNight: 1800},
			{Name: "Mountain View Lodge", Description: "Hillside lodge with garden rooms", BasePricePerNight: 1500},
			{Name: "Coral Bay Resort", Description: "Resort with pool and dive shop", BasePricePerNight: 3200},
		}
		db.Create(&hotels)
		log.Println("Hotels seeded")
	}

	var destCount int64
	db.Model(&models.VanDestination{}).Count(&destCount)
	if destCount == 0 {
		destinations := []models.VanDestination{
			{Name: "White Beach", Region: "Puerto Galera", BaseRate: 1500},
			{Name: "Talipanan Beach", Region: "Puerto Galera", BaseRate: 1700},
			{Name: "Tamaraw Falls", Region: "Puerto Galera", BaseRate: 2000},
			{Name: "Aninuan Beach", Region: "Puerto Galera", BaseRate: 1600},
			{Name: "Muelle Pier", Region: "Puerto Galera", BaseRate: 1200},
		}
		db.Create(&destinations)
		log.Println("Van destinations seeded")
	}

	var tourCount int64
	db.Model(&models.TourPackage{}).Count(&tourCount)
	if tourCount == 0 {
		tours := []models.TourPackage{
			{Name: "Island Hopping", Description: "Full-day boat tour of nearby islands", PricePerHead: 900},
			{Name: "Inland Tour", Description: "Waterfalls and viewpoint loop", PricePerHead: 700},
			{Name: "Snorkeling Trip", Description: "Coral garden snorkeling with gear", PricePerHead: 500},
		}
		db.Create(&tours)
		log.Println("Tour packages seeded")
	}
}

// ConnectDatabase opens the MySQL connection, migrates the schema, seeds
// default data and sets the package-level DB handle.
func ConnectDatabase() error {
	dsn, err := ResolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(db); err != nil {
		return err
	}

	SeedDatabase(db)
	return nil
}
