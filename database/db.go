package database

import (
	"fmt"

	"courier-booking/config"
	"courier-booking/logger"
	bookingModel "courier-booking/models/booking"
	customerModel "courier-booking/models/customer"
	feedbackModel "courier-booking/models/feedback"
	logModel "courier-booking/models/log"
	paymentModel "courier-booking/models/payment"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the PostgreSQL connection, migrates the schema in dependency
// order and creates secondary indexes.
func InitDB(cfg *config.AppConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	DB = db
	logger.Success("Connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to migrate schema", err)
		return nil, err
	}
	logger.Success("Schema migrated")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("Indexes created")

	return DB, nil
}

// autoMigrate runs auto migration staged so foreign-key targets exist first.
func autoMigrate() error {
	// Stage 1: foundation tables
	stage1 := []interface{}{
		&customerModel.Customer{},
	}

	// Stage 2: tables referencing customers
	stage2 := []interface{}{
		&bookingModel.Booking{},
	}

	// Stage 3: tables referencing bookings, plus audit logging
	stage3 := []interface{}{
		&paymentModel.Payment{},
		&feedbackModel.Feedback{},
		&logModel.Log{},
	}

	for _, stage := range [][]interface{}{stage1, stage2, stage3} {
		for _, model := range stage {
			if err := DB.AutoMigrate(model); err != nil {
				return fmt.Errorf("failed to migrate %T: %w", model, err)
			}
		}
	}
	return nil
}

// createIndexes adds indexes the listing and filter queries depend on.
func createIndexes() error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email)",
		"CREATE INDEX IF NOT EXISTS idx_customers_unique_id ON customers(unique_id)",
		"CREATE INDEX IF NOT EXISTS idx_customers_customer_name ON customers(customer_name)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_booking_id ON bookings(booking_id)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(parcel_status)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_feedbacks_created_at ON feedbacks(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)",
	}

	for _, stmt := range statements {
		if err := DB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}
	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
