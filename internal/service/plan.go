package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
)

const planCacheTTL = 10 * time.Minute

// NutritionPlanService handles plan authoring and retrieval. Plans are
// immutable inputs to adherence tracking once created, which makes them
// safe to cache.
type NutritionPlanService struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewNutritionPlanService creates a new NutritionPlanService instance. The
// Redis client is optional; without it every read goes to the database.
func NewNutritionPlanService(db *gorm.DB, redisClient *redis.Client) *NutritionPlanService {
	return &NutritionPlanService{
		db:    db,
		redis: redisClient,
	}
}

// CreatePlan validates and persists a trainer-authored plan. Daily
// templates must be numbered contiguously from 1 and match the plan
// duration; the end date is derived from the start date and duration.
func (s *NutritionPlanService) CreatePlan(ctx context.Context, plan *models.NutritionPlan) (*models.NutritionPlan, error) {
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	plan.EndDate = plan.StartDate.AddDays(plan.DurationDays - 1)
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}

	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// GetPlan retrieves a plan by ID, preferring the cache.
func (s *NutritionPlanService) GetPlan(ctx context.Context, id uuid.UUID) (*models.NutritionPlan, error) {
	if cached := s.cachedPlan(ctx, id); cached != nil {
		return cached, nil
	}

	var plan models.NutritionPlan
	if err := s.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		return nil, err
	}

	s.cachePlan(ctx, &plan)
	return &plan, nil
}

// ListPlans returns the plans visible to the actor: authored plans for a
// trainer, assigned plans for a user.
func (s *NutritionPlanService) ListPlans(ctx context.Context, actor Actor) ([]models.NutritionPlan, error) {
	var plans []models.NutritionPlan
	query := s.db.WithContext(ctx)
	switch actor.Role {
	case models.RoleTrainer:
		query = query.Where("trainer_id = ?", actor.ID)
	default:
		query = query.Where("user_id = ?", actor.ID)
	}
	if err := query.Order("start_date DESC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *NutritionPlanService) cachedPlan(ctx context.Context, id uuid.UUID) *models.NutritionPlan {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, planCacheKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var plan models.NutritionPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil
	}
	return &plan
}

func (s *NutritionPlanService) cachePlan(ctx context.Context, plan *models.NutritionPlan) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, planCacheKey(plan.ID), data, planCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache plan %s: %v", plan.ID, err)
	}
}

func planCacheKey(id uuid.UUID) string {
	return "nutrition_plan:" + id.String()
}

func validatePlan(plan *models.NutritionPlan) error {
	if plan.Name == "" {
		return fmt.Errorf("plan name is required: %w", ErrInvalidPlan)
	}
	if plan.DurationDays < 1 {
		return fmt.Errorf("duration must be at least 1 day: %w", ErrInvalidPlan)
	}
	if plan.StartDate.IsZero() {
		return fmt.Errorf("start date is required: %w", ErrInvalidPlan)
	}
	if len(plan.DailyPlans) != plan.DurationDays {
		return fmt.Errorf("expected %d daily plans, got %d: %w", plan.DurationDays, len(plan.DailyPlans), ErrInvalidPlan)
	}
	for i := range plan.DailyPlans {
		if plan.DailyPlans[i].Day != i+1 {
			return fmt.Errorf("daily plans must be numbered contiguously from 1: %w", ErrInvalidPlan)
		}
		seen := make(map[models.MealType]bool)
		for _, meal := range plan.DailyPlans[i].Meals {
			if !meal.MealType.Valid() {
				return fmt.Errorf("unknown meal type %q on day %d: %w", meal.MealType, i+1, ErrInvalidPlan)
			}
			if seen[meal.MealType] {
				return fmt.Errorf("duplicate meal type %q on day %d: %w", meal.MealType, i+1, ErrInvalidPlan)
			}
			seen[meal.MealType] = true
			if meal.Calories < 0 || meal.Protein < 0 || meal.Carbs < 0 || meal.Fat < 0 {
				return fmt.Errorf("negative nutrient target on day %d: %w", i+1, ErrInvalidPlan)
			}
		}
	}
	return nil
}
