package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

// testPlan builds a 7-day plan starting 2024-01-01 whose day-3 template has
// breakfast 300, lunch 500, dinner 600 kcal.
func testPlan() *models.NutritionPlan {
	days := make(models.DailyPlanList, 0, 7)
	for day := 1; day <= 7; day++ {
		days = append(days, models.DailyPlan{
			Day: day,
			Meals: []models.PlannedMeal{
				{MealType: models.MealBreakfast, Name: "Breakfast", Calories: 300, Protein: 20, Carbs: 35, Fat: 10},
				{MealType: models.MealLunch, Name: "Lunch", Calories: 500, Protein: 35, Carbs: 50, Fat: 15},
				{MealType: models.MealDinner, Name: "Dinner", Calories: 600, Protein: 40, Carbs: 55, Fat: 20},
			},
		})
	}

	start := types.NewDate(2024, time.January, 1)
	return &models.NutritionPlan{
		ID:           uuid.New(),
		TrainerID:    uuid.New(),
		UserID:       uuid.New(),
		Name:         "Test plan",
		StartDate:    start,
		EndDate:      start.AddDays(6),
		DurationDays: 7,
		DailyPlans:   days,
	}
}

func userActor(plan *models.NutritionPlan) Actor {
	return Actor{ID: plan.UserID, Role: models.RoleUser}
}

func trainerActor(plan *models.NutritionPlan) Actor {
	return Actor{ID: plan.TrainerID, Role: models.RoleTrainer}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.NutritionPlan{},
		&models.NutritionLog{},
	))
	return db
}
