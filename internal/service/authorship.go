package service

import (
	"github.com/google/uuid"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
)

// Actor is the authenticated identity performing an operation. It comes
// from the auth token and is trusted, not re-verified here.
type Actor struct {
	ID   uuid.UUID
	Role models.UserRole
}

// CanEdit decides whether the actor may mutate the given log. A user may
// edit only their own logs on plans assigned to them; trainer-authored logs
// are read-only to the user. A trainer may edit any log on a plan they
// authored. The predicate is evaluated fresh on every mutation attempt and
// never cached on the log.
func CanEdit(plan *models.NutritionPlan, log *models.NutritionLog, actor Actor) bool {
	switch actor.Role {
	case models.RoleTrainer:
		return plan.TrainerID == actor.ID
	case models.RoleUser:
		return plan.UserID == actor.ID && !log.CreatedByTrainer
	default:
		return false
	}
}
