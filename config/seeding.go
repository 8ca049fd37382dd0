package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"v8e.it/flotta/models"
)

// SeedAdminUser creates the initial admin account on a fresh database.
// Skips silently when any user already exists.
func SeedAdminUser() error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		log.Println("ADMIN_PASSWORD not set, seeding admin with default password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Amministratore",
		Email:        "admin@flotta.local",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded admin user", admin.Email)
	return nil
}
