package service

import (
	"math"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
)

// Adherence holds the derived metrics for one log.
type Adherence struct {
	Score         int     `json:"adherence_score"`
	TotalCalories float64 `json:"total_consumed_calories"`
}

// ComputeAdherence derives the adherence score and consumed-calorie total
// from a log's meal statuses. The score is the percentage of planned meals
// marked completed, rounded half-up, over the log's full meal set. It is
// recomputed on every save; client-supplied values are discarded.
func ComputeAdherence(log *models.NutritionLog) Adherence {
	total := len(log.Meals)
	if total == 0 {
		return Adherence{}
	}

	completed := 0
	calories := 0.0
	for i := range log.Meals {
		if log.Meals[i].Status == models.StatusCompleted {
			completed++
		}
		calories += log.Meals[i].ActualCalories
	}

	return Adherence{
		Score:         int(math.Round(100 * float64(completed) / float64(total))),
		TotalCalories: calories,
	}
}
