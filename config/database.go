package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// EnsureSchedulingConstraint installs a Postgres exclusion constraint so two
// appointments for the same professional can never hold overlapping time
// ranges, even if two requests pass the application-level conflict check
// against the same stale snapshot. Safe to call repeatedly.
func EnsureSchedulingConstraint() {
	if DB.Dialector.Name() != "postgres" {
		return
	}

	if err := DB.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		log.Printf("Failed to enable btree_gist extension: %v", err)
		return
	}

	err := DB.Exec(`
		DO $$ BEGIN
			ALTER TABLE appointments
			ADD CONSTRAINT appointments_no_overlap
			EXCLUDE USING gist (
				user_id WITH =,
				professional_id WITH =,
				tstzrange(starts_at, ends_at) WITH &&
			);
		EXCEPTION
			WHEN duplicate_object THEN NULL;
		END $$;
	`).Error
	if err != nil {
		log.Printf("Failed to create appointment exclusion constraint: %v", err)
	}
}
