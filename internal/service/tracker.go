package service

import (
	"fmt"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
)

// SetMealStatus records the compliance status of one meal on an in-memory
// log. Marking a meal completed copies the planned targets exactly; any
// other status zeroes all four actual-nutrient fields. Partial and
// substituted statuses carry no partial credit. Other meals are left
// untouched, and nothing is persisted; saving is an explicit call.
func SetMealStatus(plan *models.NutritionPlan, log *models.NutritionLog, mealType models.MealType, status models.MealStatus, actor Actor) error {
	if !CanEdit(plan, log, actor) {
		return ErrReadOnlyLog
	}
	if !status.Valid() {
		return fmt.Errorf("unknown meal status %q: %w", status, ErrInvalidInput)
	}

	idx := log.MealIndex(mealType)
	if idx < 0 {
		return fmt.Errorf("%s on day %d: %w", mealType, log.Day, ErrMealNotFound)
	}

	meal := &log.Meals[idx]
	meal.Status = status

	if status == models.StatusCompleted {
		planned := plan.PlannedMealFor(log.Day, mealType)
		if planned == nil {
			return fmt.Errorf("%s on day %d: %w", mealType, log.Day, ErrMealNotFound)
		}
		meal.ActualCalories = planned.Calories
		meal.ActualProtein = planned.Protein
		meal.ActualCarbs = planned.Carbs
		meal.ActualFat = planned.Fat
	} else {
		meal.ActualCalories = 0
		meal.ActualProtein = 0
		meal.ActualCarbs = 0
		meal.ActualFat = 0
	}

	return nil
}

// LogDetails carries the optional user-only fields of a log. Nil fields are
// left unchanged.
type LogDetails struct {
	Weight      *float64
	Mood        *models.Mood
	EnergyLevel *models.EnergyLevel
	Notes       *string
}

// UpdateLogDetails writes the optional self-report fields onto an in-memory
// log. These fields exist only on user-authored logs, so trainer-authored
// logs reject the update regardless of actor.
func UpdateLogDetails(plan *models.NutritionPlan, log *models.NutritionLog, details LogDetails, actor Actor) error {
	if !CanEdit(plan, log, actor) || log.CreatedByTrainer {
		return ErrReadOnlyLog
	}

	if details.Weight != nil {
		log.Weight = details.Weight
	}
	if details.Mood != nil {
		if !details.Mood.Valid() {
			return fmt.Errorf("unknown mood %q: %w", *details.Mood, ErrInvalidInput)
		}
		log.Mood = *details.Mood
	}
	if details.EnergyLevel != nil {
		if !details.EnergyLevel.Valid() {
			return fmt.Errorf("unknown energy level %q: %w", *details.EnergyLevel, ErrInvalidInput)
		}
		log.EnergyLevel = *details.EnergyLevel
	}
	if details.Notes != nil {
		log.Notes = *details.Notes
	}

	return nil
}
