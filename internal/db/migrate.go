package db

import (
	"mpv_backend/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration and seeding for the database schema
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := AutoMigrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	// Seed the service catalog and demo admin account
	if err := Seed(db); err != nil {
		logrus.Fatalf("seeding failed: %v", err) // Log fatal error if seeding fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// AutoMigrate creates or updates the tables for all domain models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},    // Users table
		&domain.Artist{},  // Artists table, FK to users
		&domain.Service{}, // Services catalog table
		&domain.Order{},   // Orders table, FKs to services, users and artists
		&domain.Payment{}, // Payments table, FK to users
	)
}

// Seed inserts the service catalog and a demo admin user if not already present
func Seed(db *gorm.DB) error {
	// Basic service catalog
	services := []domain.Service{
		{ID: 1, Title: "Music Production", Description: "Full music production package", Price: 2000},
		{ID: 2, Title: "Mixing & Mastering", Description: "Professional mixing and mastering", Price: 2500},
		{ID: 3, Title: "Video Editing", Description: "Video editing per minute", Price: 566},
	}
	// Insert each service only if its ID is not taken yet
	for _, s := range services {
		if err := db.Where(domain.Service{ID: s.ID}).Attrs(s).FirstOrCreate(&domain.Service{}).Error; err != nil {
			return err // Abort seeding on the first failure
		}
	}
	// Demo admin account; the empty password digest never verifies, so it cannot log in
	admin := domain.User{ID: 1, Name: "Demo Admin", Email: "admin@mpv.com", Role: "admin"}
	return db.Where(domain.User{ID: admin.ID}).Attrs(admin).FirstOrCreate(&domain.User{}).Error
}
