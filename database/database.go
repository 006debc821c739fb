// database.go - Handles database connection, migrations and admin seeding

package database

import (
	"go-shop-backend/config"
	"go-shop-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB // Global database handle used by all handlers

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return err
	}

	// Create tables for all models if needed
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Bank{},
		&models.Category{},
		&models.Product{},
		&models.Transaction{},
		&models.PurchasedItem{},
	); err != nil {
		return err
	}

	return seedAdmin()
}

// seedAdmin creates the admin user from environment config on first run.
// Only one admin may ever exist, so nothing happens once a user row is
// present; a seeded admin also makes the create-admin endpoint return 409.
func seedAdmin() error {
	cfg := config.Load()

	// Only seed when explicitly configured
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	DB.Model(&models.User{}).Count(&count)

	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := models.User{
			Email:    cfg.AdminEmail,
			Password: string(hash),
			Name:     cfg.AdminName,
		}

		if err := DB.Create(&admin).Error; err != nil {
			return err
		}
	}

	return nil
}
