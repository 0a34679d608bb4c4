package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
	"github.com/kinetra/fitpulse-v2/backend/internal/service"
)

// actorFromContext extracts the authenticated actor stored by the auth
// middleware.
func actorFromContext(c *gin.Context) (service.Actor, bool) {
	idVal, ok := c.Get("user_id")
	if !ok {
		return service.Actor{}, false
	}
	id, ok := idVal.(uuid.UUID)
	if !ok {
		return service.Actor{}, false
	}
	role := models.UserRole(c.GetString("role"))
	return service.Actor{ID: id, Role: role}, true
}

// canAccessPlan reports whether the actor is a participant of the plan:
// its assigned user or the trainer who authored it.
func canAccessPlan(plan *models.NutritionPlan, actor service.Actor) bool {
	return actor.ID == plan.UserID || actor.ID == plan.TrainerID
}

// respondServiceError maps domain errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDateOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{"error": "no active plan for this date"})
	case errors.Is(err, service.ErrPlanMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": "plan changed, please refresh"})
	case errors.Is(err, service.ErrMealNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrReadOnlyLog):
		c.JSON(http.StatusForbidden, gin.H{"error": "log is read-only"})
	case errors.Is(err, service.ErrInvalidPlan), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
