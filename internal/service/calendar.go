package service

import (
	"fmt"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

// ResolveDay maps a calendar date onto the plan's 1-based day offset. The
// plan's start date is day 1. The comparison works on calendar-date
// components only; no instant arithmetic is involved, so midnight and DST
// boundaries cannot shift the result.
func ResolveDay(plan *models.NutritionPlan, date types.Date) (int, error) {
	day := date.DaysSince(plan.StartDate) + 1
	if day < 1 || day > plan.DurationDays {
		return 0, fmt.Errorf("day %d of %d-day plan: %w", day, plan.DurationDays, ErrDateOutOfRange)
	}
	return day, nil
}
