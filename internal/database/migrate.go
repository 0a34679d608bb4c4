package database

import (
	"gorm.io/gorm"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
)

// RunMigrations brings the schema up to date. The unique index on
// nutrition_logs (plan_id, date) is what makes the log upsert atomic, so
// it must exist before the API serves writes.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.NutritionPlan{},
		&models.NutritionLog{},
	)
}
