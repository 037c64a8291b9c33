package database

import (
	"fmt"
	"log"
	"os"

	"competition-portal/internal/domain/competition"
	"competition-portal/internal/domain/registration"
	"competition-portal/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	// ✅ Auto-migrate all domain models
	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},

		// competitions
		&competition.Competition{},

		// registrations
		&registration.Team{},
		&registration.Registration{},
		&registration.Member{},
		&registration.Document{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
