package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

// MealStatus is the compliance state of one logged meal. NotLogged is the
// explicit initial state shown before the first interaction, not an absent
// field.
type MealStatus string

const (
	StatusNotLogged   MealStatus = "not_logged"
	StatusCompleted   MealStatus = "completed"
	StatusSkipped     MealStatus = "skipped"
	StatusPartial     MealStatus = "partial"
	StatusSubstituted MealStatus = "substituted"
)

// Valid reports whether s is a known meal status.
func (s MealStatus) Valid() bool {
	switch s {
	case StatusNotLogged, StatusCompleted, StatusSkipped, StatusPartial, StatusSubstituted:
		return true
	}
	return false
}

// Mood is the optional self-reported mood on a user-authored log.
type Mood string

const (
	MoodExcellent Mood = "excellent"
	MoodGood      Mood = "good"
	MoodAverage   Mood = "average"
	MoodPoor      Mood = "poor"
	MoodTerrible  Mood = "terrible"
)

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool {
	switch m {
	case MoodExcellent, MoodGood, MoodAverage, MoodPoor, MoodTerrible:
		return true
	}
	return false
}

// EnergyLevel is the optional self-reported energy on a user-authored log.
type EnergyLevel string

const (
	EnergyVeryHigh EnergyLevel = "very_high"
	EnergyHigh     EnergyLevel = "high"
	EnergyMedium   EnergyLevel = "medium"
	EnergyLow      EnergyLevel = "low"
	EnergyVeryLow  EnergyLevel = "very_low"
)

// Valid reports whether e is a known energy level.
func (e EnergyLevel) Valid() bool {
	switch e {
	case EnergyVeryHigh, EnergyHigh, EnergyMedium, EnergyLow, EnergyVeryLow:
		return true
	}
	return false
}

// LoggedMeal records compliance against one planned meal. Actual nutrients
// mirror the planned targets when the meal is completed and are zero for
// every other status.
type LoggedMeal struct {
	MealType       MealType   `json:"meal_type"`
	Status         MealStatus `json:"status"`
	ActualCalories float64    `json:"actual_calories"`
	ActualProtein  float64    `json:"actual_protein"`
	ActualCarbs    float64    `json:"actual_carbs"`
	ActualFat      float64    `json:"actual_fat"`
}

// LoggedMealList stores a log's meals as a JSONB column.
type LoggedMealList []LoggedMeal

// Value implements the driver.Valuer interface.
func (l LoggedMealList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface.
func (l *LoggedMealList) Scan(value interface{}) error {
	if value == nil {
		*l = LoggedMealList{}
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

// NutritionLog is the record of what actually happened on one calendar date
// against one plan. At most one log exists per (plan, date); logs are
// updated in place and never deleted. AdherenceScore and
// TotalConsumedCalories are derived on every save, never trusted from the
// client.
type NutritionLog struct {
	ID                    uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	PlanID                uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex:uidx_plan_date" json:"plan_id"`
	UserID                uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Date                  types.Date     `gorm:"type:date;not null;uniqueIndex:uidx_plan_date" json:"date"`
	Day                   int            `gorm:"not null" json:"day"`
	Meals                 LoggedMealList `gorm:"type:jsonb;not null;default:'[]'" json:"meals"`
	TotalConsumedCalories float64        `json:"total_consumed_calories"`
	AdherenceScore        int            `json:"adherence_score"`
	CreatedByTrainer      bool           `gorm:"not null;default:false" json:"created_by_trainer"`
	Weight                *float64       `json:"weight,omitempty"`
	Mood                  Mood           `gorm:"size:20" json:"mood,omitempty"`
	EnergyLevel           EnergyLevel    `gorm:"size:20" json:"energy_level,omitempty"`
	Notes                 string         `gorm:"type:text" json:"notes,omitempty"`
}

// Persisted reports whether the log has been saved, as opposed to an
// unsaved draft synthesized from the plan template.
func (l *NutritionLog) Persisted() bool {
	return l.ID != uuid.Nil
}

// MealIndex returns the position of the logged meal with the given type,
// or -1 when the day's template has no such slot.
func (l *NutritionLog) MealIndex(mealType MealType) int {
	for i := range l.Meals {
		if l.Meals[i].MealType == mealType {
			return i
		}
	}
	return -1
}
