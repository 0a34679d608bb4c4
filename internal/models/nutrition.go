package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

// MealType is the closed set of meal slots a daily plan can contain.
type MealType string

const (
	MealBreakfast   MealType = "breakfast"
	MealLunch       MealType = "lunch"
	MealDinner      MealType = "dinner"
	MealSnack       MealType = "snack"
	MealPreWorkout  MealType = "pre_workout"
	MealPostWorkout MealType = "post_workout"
)

// Valid reports whether t is one of the known meal slots.
func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealPreWorkout, MealPostWorkout:
		return true
	}
	return false
}

// Ingredient is informational only; quantities are never aggregated.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// PlannedMeal is one trainer-authored meal within a daily template.
type PlannedMeal struct {
	MealType     MealType     `json:"meal_type"`
	Name         string       `json:"name"`
	Instructions string       `json:"instructions,omitempty"`
	Calories     float64      `json:"calories"`
	Protein      float64      `json:"protein"`
	Carbs        float64      `json:"carbs"`
	Fat          float64      `json:"fat"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
}

// DailyPlan is one day's ordered set of planned meals, addressed by a
// 1-based day offset that is stable for the life of the plan.
type DailyPlan struct {
	Day   int           `json:"day"`
	Meals []PlannedMeal `json:"meals"`
}

// DailyPlanList stores the per-day templates as a JSONB column.
type DailyPlanList []DailyPlan

// Value implements the driver.Valuer interface.
func (l DailyPlanList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface.
func (l *DailyPlanList) Scan(value interface{}) error {
	if value == nil {
		*l = DailyPlanList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// NutritionPlan is a trainer-authored, fixed-length sequence of daily meal
// templates. The tracking side treats it as a read-only input: templates are
// never reordered and day numbers are stable identifiers.
type NutritionPlan struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	TrainerID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"trainer_id"`
	UserID       uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	StartDate    types.Date     `gorm:"type:date;not null" json:"start_date"`
	EndDate      types.Date     `gorm:"type:date;not null" json:"end_date"`
	DurationDays int            `gorm:"not null" json:"duration_days"`
	DailyPlans   DailyPlanList  `gorm:"type:jsonb;not null;default:'[]'" json:"daily_plans"`
}

// DailyPlanFor returns the template for the given 1-based day, or nil when
// the plan has no template for that day.
func (p *NutritionPlan) DailyPlanFor(day int) *DailyPlan {
	for i := range p.DailyPlans {
		if p.DailyPlans[i].Day == day {
			return &p.DailyPlans[i]
		}
	}
	return nil
}

// PlannedMealFor returns the planned meal of the given type on the given
// day, or nil when the day's template has no such slot.
func (p *NutritionPlan) PlannedMealFor(day int, mealType MealType) *PlannedMeal {
	template := p.DailyPlanFor(day)
	if template == nil {
		return nil
	}
	for i := range template.Meals {
		if template.Meals[i].MealType == mealType {
			return &template.Meals[i]
		}
	}
	return nil
}
