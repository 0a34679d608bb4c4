package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

// NutritionLogService owns the per-(plan, date) adherence logs: at most one
// log per plan per calendar date, updated in place, never deleted.
type NutritionLogService struct {
	db *gorm.DB
}

// NewNutritionLogService creates a new NutritionLogService instance.
func NewNutritionLogService(db *gorm.DB) *NutritionLogService {
	return &NutritionLogService{db: db}
}

// GetOrInitialize returns the persisted log for (plan, date) when one
// exists. Otherwise it synthesizes an unsaved draft from the plan's
// template for that day, every meal defaulted to not_logged. A day inside
// the plan window with no template yields a draft with no meals rather than
// an error; a date outside the window yields ErrDateOutOfRange. Repeated
// calls before the first save return equivalent drafts.
func (s *NutritionLogService) GetOrInitialize(ctx context.Context, plan *models.NutritionPlan, date types.Date) (*models.NutritionLog, error) {
	var log models.NutritionLog
	err := s.db.WithContext(ctx).
		Where("plan_id = ? AND date = ?", plan.ID, date).
		First(&log).Error
	if err == nil {
		return &log, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	day, err := ResolveDay(plan, date)
	if err != nil {
		return nil, err
	}

	draft := &models.NutritionLog{
		PlanID: plan.ID,
		UserID: plan.UserID,
		Date:   date,
		Day:    day,
		Meals:  models.LoggedMealList{},
	}

	if template := plan.DailyPlanFor(day); template != nil {
		for _, planned := range template.Meals {
			draft.Meals = append(draft.Meals, models.LoggedMeal{
				MealType: planned.MealType,
				Status:   models.StatusNotLogged,
			})
		}
	}

	return draft, nil
}

// Save persists the log as the authoritative record for its (plan, date)
// key. It re-resolves the day offset, validates the meal set against the
// plan template, and recomputes the derived fields before writing; the
// caller's derived values are discarded. An existing log for the same key
// is updated in place, never duplicated. The uniqueness constraint on
// (plan_id, date) makes near-simultaneous first saves collapse into one
// row.
func (s *NutritionLogService) Save(ctx context.Context, plan *models.NutritionPlan, log *models.NutritionLog, actor Actor) (*models.NutritionLog, error) {
	if !CanEdit(plan, log, actor) {
		return nil, ErrReadOnlyLog
	}

	day, err := ResolveDay(plan, log.Date)
	if err != nil {
		return nil, err
	}
	log.Day = day

	if err := validateMealSet(plan, day, log.Meals); err != nil {
		return nil, err
	}

	derived := ComputeAdherence(log)
	log.AdherenceScore = derived.Score
	log.TotalConsumedCalories = derived.TotalCalories

	log.PlanID = plan.ID
	if log.UserID == uuid.Nil {
		log.UserID = plan.UserID
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "plan_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"day", "meals", "total_consumed_calories", "adherence_score",
				"weight", "mood", "energy_level", "notes", "updated_at",
			}),
		}).
		Create(log).Error
	if err != nil {
		return nil, err
	}

	// On conflict the stored row keeps its original ID; reload so callers
	// always see the canonical record.
	var saved models.NutritionLog
	if err := s.db.WithContext(ctx).
		Where("plan_id = ? AND date = ?", plan.ID, log.Date).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListByPlan returns every log recorded against the plan, most recent date
// first. Read-only; used for history views.
func (s *NutritionLogService) ListByPlan(ctx context.Context, planID uuid.UUID) ([]models.NutritionLog, error) {
	var logs []models.NutritionLog
	err := s.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// validateMealSet checks that the log's meals match the plan template for
// its day 1:1 and in order.
func validateMealSet(plan *models.NutritionPlan, day int, meals models.LoggedMealList) error {
	template := plan.DailyPlanFor(day)
	if template == nil {
		if len(meals) == 0 {
			return nil
		}
		return fmt.Errorf("day %d has no planned meals: %w", day, ErrPlanMismatch)
	}
	if len(meals) != len(template.Meals) {
		return fmt.Errorf("day %d expects %d meals, got %d: %w", day, len(template.Meals), len(meals), ErrPlanMismatch)
	}
	for i := range meals {
		if meals[i].MealType != template.Meals[i].MealType {
			return fmt.Errorf("meal %d is %s, plan expects %s: %w", i, meals[i].MealType, template.Meals[i].MealType, ErrPlanMismatch)
		}
	}
	return nil
}
