package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
	"github.com/kinetra/fitpulse-v2/backend/internal/service"
	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

type NutritionLogHandler struct {
	plans *service.NutritionPlanService
	logs  *service.NutritionLogService
}

func NewNutritionLogHandler(plans *service.NutritionPlanService, logs *service.NutritionLogService) *NutritionLogHandler {
	return &NutritionLogHandler{
		plans: plans,
		logs:  logs,
	}
}

// loadPlan parses the plan id, fetches the plan and checks that the actor
// is a participant. Responds and returns nil on any failure.
func (h *NutritionLogHandler) loadPlan(c *gin.Context, actor service.Actor) *models.NutritionPlan {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return nil
	}

	plan, err := h.plans.GetPlan(c.Request.Context(), planID)
	if err != nil {
		respondServiceError(c, err)
		return nil
	}
	if !canAccessPlan(plan, actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant of this plan"})
		return nil
	}
	return plan
}

// ListLogs returns every log recorded against the plan, most recent date
// first.
func (h *NutritionLogHandler) ListLogs(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	plan := h.loadPlan(c, actor)
	if plan == nil {
		return
	}

	logs, err := h.logs.ListByPlan(c.Request.Context(), plan.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// GetLog returns the log for one date: the persisted record when one
// exists, otherwise an unsaved draft built from the plan template with
// every meal not_logged. A date outside the plan window maps to 404 so the
// UI can show "no active plan for this date". The editable flag tells the
// UI whether to render status-selector controls.
func (h *NutritionLogHandler) GetLog(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	plan := h.loadPlan(c, actor)
	if plan == nil {
		return
	}

	date, err := types.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	log, err := h.logs.GetOrInitialize(c.Request.Context(), plan, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"log":       log,
		"persisted": log.Persisted(),
		"editable":  service.CanEdit(plan, log, actor),
	})
}

// SaveLog upserts the log for one date: it applies the submitted meal
// statuses and optional details to the current draft or persisted log,
// then saves with server-side recomputation of the derived fields.
func (h *NutritionLogHandler) SaveLog(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	plan := h.loadPlan(c, actor)
	if plan == nil {
		return
	}

	var req SaveLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	log, err := h.logs.GetOrInitialize(c.Request.Context(), plan, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	wasPersisted := log.Persisted()

	// Trainer authorship is fixed at creation and never mutated after.
	if !wasPersisted && req.CreatedByTrainer && actor.Role == models.RoleTrainer {
		log.CreatedByTrainer = true
	}

	for _, update := range req.Meals {
		if err := service.SetMealStatus(plan, log, update.MealType, update.Status, actor); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	if req.Details != nil {
		details := service.LogDetails{
			Weight:      req.Details.Weight,
			Mood:        req.Details.Mood,
			EnergyLevel: req.Details.EnergyLevel,
			Notes:       req.Details.Notes,
		}
		if err := service.UpdateLogDetails(plan, log, details, actor); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	saved, err := h.logs.Save(c.Request.Context(), plan, log, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if !wasPersisted {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"log": saved})
}

// UpdateLogDetails writes the optional self-report fields (weight, mood,
// energy level, notes) for one date without touching meal statuses.
func (h *NutritionLogHandler) UpdateLogDetails(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	plan := h.loadPlan(c, actor)
	if plan == nil {
		return
	}

	date, err := types.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	var req LogDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.logs.GetOrInitialize(c.Request.Context(), plan, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	details := service.LogDetails{
		Weight:      req.Weight,
		Mood:        req.Mood,
		EnergyLevel: req.EnergyLevel,
		Notes:       req.Notes,
	}
	if err := service.UpdateLogDetails(plan, log, details, actor); err != nil {
		respondServiceError(c, err)
		return
	}

	saved, err := h.logs.Save(c.Request.Context(), plan, log, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"log": saved})
}
