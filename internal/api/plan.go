package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
	"github.com/kinetra/fitpulse-v2/backend/internal/service"
	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

type NutritionPlanHandler struct {
	plans *service.NutritionPlanService
}

func NewNutritionPlanHandler(plans *service.NutritionPlanService) *NutritionPlanHandler {
	return &NutritionPlanHandler{plans: plans}
}

// ListPlans returns the plans visible to the actor: authored for trainers,
// assigned for users.
func (h *NutritionPlanHandler) ListPlans(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	plans, err := h.plans.ListPlans(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *NutritionPlanHandler) GetPlan(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	plan, err := h.plans.GetPlan(c.Request.Context(), planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canAccessPlan(plan, actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant of this plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// CreatePlan is trainer-only: it authors a new plan for a user, with one
// meal template per day of the plan.
func (h *NutritionPlanHandler) CreatePlan(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	if actor.Role != models.RoleTrainer {
		c.JSON(http.StatusForbidden, gin.H{"error": "only trainers can create plans"})
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	startDate, err := types.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date, expected YYYY-MM-DD"})
		return
	}

	plan := &models.NutritionPlan{
		TrainerID:    actor.ID,
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    startDate,
		DurationDays: req.DurationDays,
		DailyPlans:   req.DailyPlans,
	}

	created, err := h.plans.CreatePlan(c.Request.Context(), plan)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
