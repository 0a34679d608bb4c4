package api

import "github.com/kinetra/fitpulse-v2/backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreatePlanRequest struct {
	UserID       string             `json:"user_id" binding:"required"`
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	StartDate    string             `json:"start_date" binding:"required"`
	DurationDays int                `json:"duration_days" binding:"required"`
	DailyPlans   []models.DailyPlan `json:"daily_plans" binding:"required"`
}

// MealStatusUpdate sets one meal's compliance status. Actual nutrients are
// derived server-side from the status, never taken from the client.
type MealStatusUpdate struct {
	MealType models.MealType   `json:"meal_type" binding:"required"`
	Status   models.MealStatus `json:"status" binding:"required"`
}

// SaveLogRequest upserts the log for one date. Client-submitted derived
// values are ignored; adherence is recomputed on save.
type SaveLogRequest struct {
	Date             string             `json:"date" binding:"required"`
	Meals            []MealStatusUpdate `json:"meals"`
	CreatedByTrainer bool               `json:"created_by_trainer"`
	Details          *LogDetailsRequest `json:"details"`
}

// LogDetailsRequest carries the optional self-report fields of a
// user-authored log. Absent fields are left unchanged.
type LogDetailsRequest struct {
	Weight      *float64            `json:"weight"`
	Mood        *models.Mood        `json:"mood"`
	EnergyLevel *models.EnergyLevel `json:"energy_level"`
	Notes       *string             `json:"notes"`
}
