package database

import (
	"log"

	"labourmandi/config"
	"labourmandi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global GORM handle.
var DB *gorm.DB

// InitDB opens the Postgres connection and migrates the schema.
func InitDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.TechnicianProfile{},
		&models.PortfolioItem{},
		&models.Job{},
		&models.Bid{},
		&models.WalletTransaction{},
		&models.OtpVerification{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Println("Connected to Postgres successfully!")
}
