package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dmstancu/workshop-api/internal/config"
	"github.com/dmstancu/workshop-api/internal/logger"
	"github.com/dmstancu/workshop-api/internal/models"
)

var DB *gorm.DB

// Connect opens the database. DATABASE_URL selects Postgres; without it the
// server falls back to a local SQLite file. TranslateError is required so
// unique-constraint violations surface as gorm.ErrDuplicatedKey, which the
// public-code retry loop depends on.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Get().Info("Database connection established")
	return nil
}

func Migrate() error {
	err := DB.AutoMigrate(
		&models.Workshop{},
		&models.User{},
		&models.Mechanic{},
		&models.WorkOrder{},
		&models.LineItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Get().Info("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
