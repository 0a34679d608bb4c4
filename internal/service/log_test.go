package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetra/fitpulse-v2/backend/internal/models"
	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

func TestGetOrInitializeReturnsDraft(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNutritionLogService(db)
	plan := testPlan()
	ctx := context.Background()

	log, err := svc.GetOrInitialize(ctx, plan, types.NewDate(2024, time.January, 3))
	require.NoError(t, err)

	assert.False(t, log.Persisted())
	assert.Equal(t, 3, log.Day)
	assert.False(t, log.CreatedByTrainer)
	require.Len(t, log.Meals, 3)
	for _, meal := range log.Meals {
		assert.Equal(t, models.StatusNotLogged, meal.Status)
		assert.Zero(t, meal.ActualCalories)
	}

	// Idempotent before any save.
	again, err := svc.GetOrInitialize(ctx, plan, types.NewDate(2024, time.January, 3))
	require.NoError(t, err)
	assert.Equal(t, log, again)
}

func TestGetOrInitializeOutsideWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNutritionLogService(db)
	plan := testPlan()

	_, err := svc.GetOrInitialize(context.Background(), plan, types.NewDate(2024, time.January, 10))
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestGetOrInitializeDayWithoutTemplate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNutritionLogService(db)

	// A plan whose last day has no template: in-window dates without
	// planned meals are a valid empty state, not an error.
	plan := testPlan()
	plan.DailyPlans = plan.DailyPlans[:6]

	log, err := svc.GetOrInitialize(context.Background(), plan, types.NewDate(2024, time.January, 7))
	require.NoError(t, err)
	assert.Empty(t, log.Meals)
	assert.Equal(t, 7, log.Day)
}

func TestSaveExampleScenario(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNutritionLogService(db)
	plan := testPlan()
	ctx := context.Background()
	actor := userActor(plan)

	log, err := svc.GetOrInitialize(ctx, plan, types.NewDate(2024, time.January, 3))
	require.NoError(t, err)
	require.NoError(t, SetMealStatus(plan, log, models.MealBreakfast, models.StatusCompleted, actor))

	saved, err := svc.Save(ctx, plan, log, actor)
	require.NoError(t, err)

	assert.True(t, saved.Persisted())
	assert.Equal(t, 300.0, saved.TotalConsumedCalories)
	assert.Equal(t, 33, saved.AdherenceScore)

	// Subsequent reads return the persisted log.
	reloaded, err := svc.GetOrInitialize(ctx, plan, types.NewDate(2024, time.January, 3))
	require.NoError(t, err)
	assert.Equal(t, saved.ID, reloaded.ID)
	assert.Equal(t, models.StatusCompleted, reloaded.Meals[0].Status)
}

func TestSaveUpsertsSameKey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNutritionLogService(db)
	plan := testPlan()
	ctx := context.Background()
	actor := userActor(plan)
	date := types.NewDate(2024, time.January, 3)

	first, err := svc.GetOrInitialize(ctx, plan, date)
	require.NoError(t, err)
	require.NoError(t, SetMealStatus(plan, first, models.MealBreakfast, models.StatusCompleted, actor))
	savedFirst, err := svc.Save(ctx, plan, first, actor)
	require.NoError(t, err)

	// A second client still holding an unsaved draft saves for the same
	// date; the unique (plan_id, date) key collapses both into one row.
	second := draftLog(plan, 3)
	require.NoError(t, SetMealStatus(plan, second, models.MealLunch, models.StatusCompleted, actor))
	require.NoError(t, SetMealStatus(plan, second, models.MealBreakfast, models.StatusCompleted, actor))
	savedSecond, err := svc.Save(ctx, plan, second, actor)
	require.NoError(t, err)

	assert.Equal(t, savedFirst.ID, savedSecond.ID)
	assert.Equal(t, 67, savedSecond.AdherenceScore)
	assert.Equal(t, 800.0, savedSecond.TotalConsumedCalories)

	var count int64
	require.NoError(t, db.Model(&models.NutritionLog{}).Where("plan_id = ?", plan.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSaveDiscardsClientDerivedValues(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNutritionLogService(db)
	plan := testPlan()
	ctx := context.Background()
	actor := userActor(plan)

	log, err := svc.GetOrInitialize(ctx, plan, types.NewDate(2024, time.January, 3))
	require.NoError(t, err)
	require.NoError(t, SetMealStatus(plan, log, models.MealDinner, models.StatusCompleted, actor))

	// A stale or hostile client claims perfect adherence.
	log.AdherenceScore = 100
	log.TotalConsumedCalories = 9999

	saved, err := svc.Save(ctx, plan, log, actor)
	require.NoError(t, err)
	assert.Equal(t, 33, saved.AdherenceScore)
	assert.Equal(t, 600.0, saved.TotalConsumedCalories)
}

func TestSaveRejectsMismatchedMealSet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNutritionLogService(db)
	plan := testPlan()
	ctx := context.Background()
	actor := userActor(plan)

	log, err := svc.GetOrInitialize(ctx, plan, types.NewDate(2024, time.January, 3))
	require.NoError(t, err)

	log.Meals = append(log.Meals, models.LoggedMeal{MealType: models.MealSnack, Status: models.StatusCompleted})
	_, err = svc.Save(ctx, plan, log, actor)
	assert.ErrorIs(t, err, ErrPlanMismatch)

	log2, err := svc.GetOrInitialize(ctx, plan, types.NewDate(2024, time.January, 3))
	require.NoError(t, err)
	log2.Meals[0].MealType = models.MealSnack
	_, err = svc.Save(ctx, plan, log2, actor)
	assert.ErrorIs(t, err, ErrPlanMismatch)
}

func TestSaveDeniedForUserOnTrainerLog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNutritionLogService(db)
	plan := testPlan()
	ctx := context.Background()

	log, err := svc.GetOrInitialize(ctx, plan, types.NewDate(2024, time.January, 2))
	require.NoError(t, err)
	log.CreatedByTrainer = true

	_, err = svc.Save(ctx, plan, log, userActor(plan))
	assert.ErrorIs(t, err, ErrReadOnlyLog)

	saved, err := svc.Save(ctx, plan, log, trainerActor(plan))
	require.NoError(t, err)
	assert.True(t, saved.CreatedByTrainer)
}

func TestListByPlanMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNutritionLogService(db)
	plan := testPlan()
	ctx := context.Background()
	actor := userActor(plan)

	for _, day := range []int{2, 5, 3} {
		date := plan.StartDate.AddDays(day - 1)
		log, err := svc.GetOrInitialize(ctx, plan, date)
		require.NoError(t, err)
		_, err = svc.Save(ctx, plan, log, actor)
		require.NoError(t, err)
	}

	logs, err := svc.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, 5, logs[0].Day)
	assert.Equal(t, 3, logs[1].Day)
	assert.Equal(t, 2, logs[2].Day)
}
