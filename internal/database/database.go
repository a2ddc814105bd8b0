package database

import (
	"fmt"
	"time"

	"github.com/propease/propease-api/internal/models"
	pkgLogger "github.com/propease/propease-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a connection to the PostgreSQL database
func Connect(databaseURL, environment string) (*gorm.DB, error) {
	// Configure GORM logger
	logLevel := logger.Silent
	if environment != "production" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(databaseURL), Config(logLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Config returns the gorm settings shared by every dialect. Foreign keys are
// not created: soft deleted units keep the id of a floor that a wing edit
// has since replaced.
func Config(logLevel logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:                                   pkgLogger.NewGormLogger(logLevel, 200*time.Millisecond),
		SkipDefaultTransaction:                   true,
		PrepareStmt:                              true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// Migrate creates or updates the schema for every model
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
