package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
)

func logWithStatuses(statuses ...models.MealStatus) *models.NutritionLog {
	mealTypes := []models.MealType{models.MealBreakfast, models.MealLunch, models.MealDinner}
	log := &models.NutritionLog{Day: 3}
	for i, status := range statuses {
		meal := models.LoggedMeal{MealType: mealTypes[i%len(mealTypes)], Status: status}
		if status == models.StatusCompleted {
			meal.ActualCalories = 300
		}
		log.Meals = append(log.Meals, meal)
	}
	return log
}

func TestComputeAdherenceOneOfThree(t *testing.T) {
	log := logWithStatuses(models.StatusCompleted, models.StatusNotLogged, models.StatusNotLogged)

	got := ComputeAdherence(log)
	assert.Equal(t, 33, got.Score)
	assert.Equal(t, 300.0, got.TotalCalories)
}

func TestComputeAdherenceHalfUpRounding(t *testing.T) {
	// 2 of 3 completed: 66.67 rounds up to 67.
	got := ComputeAdherence(logWithStatuses(models.StatusCompleted, models.StatusCompleted, models.StatusSkipped))
	assert.Equal(t, 67, got.Score)
}

func TestComputeAdherenceFullScoreOnlyWhenAllCompleted(t *testing.T) {
	all := ComputeAdherence(logWithStatuses(models.StatusCompleted, models.StatusCompleted, models.StatusCompleted))
	assert.Equal(t, 100, all.Score)

	// partial and substituted do not count toward the score.
	almost := ComputeAdherence(logWithStatuses(models.StatusCompleted, models.StatusPartial, models.StatusSubstituted))
	assert.Equal(t, 33, almost.Score)

	none := ComputeAdherence(logWithStatuses(models.StatusSkipped, models.StatusSkipped, models.StatusSkipped))
	assert.Equal(t, 0, none.Score)
}

func TestComputeAdherenceScoreBounds(t *testing.T) {
	statuses := []models.MealStatus{
		models.StatusNotLogged, models.StatusCompleted, models.StatusSkipped,
		models.StatusPartial, models.StatusSubstituted,
	}
	for _, a := range statuses {
		for _, b := range statuses {
			got := ComputeAdherence(logWithStatuses(a, b))
			assert.GreaterOrEqual(t, got.Score, 0)
			assert.LessOrEqual(t, got.Score, 100)
		}
	}
}

func TestComputeAdherenceIdempotent(t *testing.T) {
	log := logWithStatuses(models.StatusCompleted, models.StatusSkipped, models.StatusNotLogged)

	first := ComputeAdherence(log)
	second := ComputeAdherence(log)
	assert.Equal(t, first, second)
}

func TestComputeAdherenceEmptyLog(t *testing.T) {
	got := ComputeAdherence(&models.NutritionLog{})
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 0.0, got.TotalCalories)
}
