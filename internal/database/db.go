package database

import (
	"log"

	"buildpro-backend/internal/config"
	"buildpro-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connection established, migration complete.")
}

// Migrate brings the schema up to date. Idempotent against a pre-existing
// schema; also used to prepare test databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Material{},
		&models.MaterialUsage{},
		&models.PurchaseOrder{},
		&models.Vendor{},
		&models.VendorMaterial{},
		&models.Project{},
	)
}
