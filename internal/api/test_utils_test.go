package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kinetra/fitpulse-v2/backend/internal/api"
	"github.com/kinetra/fitpulse-v2/backend/internal/models"
	"github.com/kinetra/fitpulse-v2/backend/internal/router"
	"github.com/kinetra/fitpulse-v2/backend/internal/service"
	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

type testEnv struct {
	DB    *gorm.DB
	Auth  *service.AuthService
	Plans *service.NutritionPlanService
	Logs  *service.NutritionLogService
}

func setupTestRouter(t *testing.T) (*gin.Engine, *testEnv) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.NutritionPlan{},
		&models.NutritionLog{},
	))

	env := &testEnv{
		DB:    db,
		Auth:  service.NewAuthService(db, "test-secret"),
		Plans: service.NewNutritionPlanService(db, nil),
		Logs:  service.NewNutritionLogService(db),
	}

	engine := router.SetupRouter(
		api.NewAuthHandler(env.Auth),
		api.NewNutritionPlanHandler(env.Plans),
		api.NewNutritionLogHandler(env.Plans, env.Logs),
		env.Auth,
		nil,
		nil,
	)
	return engine, env
}

func createTestUser(t *testing.T, env *testEnv, role models.UserRole) (models.User, string) {
	t.Helper()

	user := models.User{
		ID:           uuid.New(),
		Name:         "Test " + string(role),
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()),
		PasswordHash: "unused",
		Role:         role,
	}
	require.NoError(t, env.DB.Create(&user).Error)

	token, err := env.Auth.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return user, token
}

func createTestPlan(t *testing.T, env *testEnv, trainer, user models.User) *models.NutritionPlan {
	t.Helper()

	days := make(models.DailyPlanList, 0, 7)
	for day := 1; day <= 7; day++ {
		days = append(days, models.DailyPlan{
			Day: day,
			Meals: []models.PlannedMeal{
				{MealType: models.MealBreakfast, Name: "Breakfast", Calories: 300, Protein: 20, Carbs: 35, Fat: 10},
				{MealType: models.MealLunch, Name: "Lunch", Calories: 500, Protein: 35, Carbs: 50, Fat: 15},
				{MealType: models.MealDinner, Name: "Dinner", Calories: 600, Protein: 40, Carbs: 55, Fat: 20},
			},
		})
	}

	plan, err := env.Plans.CreatePlan(context.Background(), &models.NutritionPlan{
		TrainerID:    trainer.ID,
		UserID:       user.ID,
		Name:         "Test plan",
		StartDate:    types.NewDate(2024, time.January, 1),
		DurationDays: 7,
		DailyPlans:   days,
	})
	require.NoError(t, err)
	return plan
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
