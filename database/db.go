package database

import (
	"fmt"
	"os"

	"rhumuda-booking/database/seeders"
	"rhumuda-booking/logger"
	bookingModel "rhumuda-booking/models/booking"
	"rhumuda-booking/models/catalog"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	seeders.SeedCatalog(DB)

	return DB, nil
}

// autoMigrate runs auto migration for all models, reference data first
// so booking foreign keys can be created.
func autoMigrate() error {
	// Stage 1: standalone catalog models
	stage1Models := []interface{}{
		&catalog.JettyPoint{},
		&catalog.AddOn{},
		&catalog.PackageCategory{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: packages and their owned children
	stage2Models := []interface{}{
		&catalog.Package{},
		&catalog.PriceTier{},
		&catalog.IncludedService{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: bookings referencing the catalog
	if err := DB.AutoMigrate(&bookingModel.Booking{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &bookingModel.Booking{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_booking_id ON bookings(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking booking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)").Error; err != nil {
		return fmt.Errorf("failed to create booking status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_booking_date ON bookings(booking_date)").Error; err != nil {
		return fmt.Errorf("failed to create booking booking_date index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_packages_category_id ON packages(category_id)").Error; err != nil {
		return fmt.Errorf("failed to create package category_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_price_tiers_package_id ON price_tiers(package_id)").Error; err != nil {
		return fmt.Errorf("failed to create price tier package_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_included_services_package_id ON included_services(package_id)").Error; err != nil {
		return fmt.Errorf("failed to create included service package_id index: %w", err)
	}
	return nil
}
