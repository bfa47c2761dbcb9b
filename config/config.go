package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/NibirNd/Safebite-App/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB loads the environment and opens the local profile database.
// SAFEBITE_DB_PATH overrides the default location.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dbPath := os.Getenv("SAFEBITE_DB_PATH")
	if dbPath == "" {
		dbPath = "safebite.db"
	}
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := DB.AutoMigrate(&models.ProfileRecord{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
