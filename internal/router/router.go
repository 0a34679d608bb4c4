package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kinetra/fitpulse-v2/backend/internal/api"
	"github.com/kinetra/fitpulse-v2/backend/internal/database"
	"github.com/kinetra/fitpulse-v2/backend/internal/middleware"
)

// SetupRouter configures the application routes. The health DB and rate
// limiter are optional; routes degrade gracefully without them.
func SetupRouter(
	authHandler *api.AuthHandler,
	planHandler *api.NutritionPlanHandler,
	logHandler *api.NutritionLogHandler,
	validator middleware.TokenValidator,
	healthDB *database.DB,
	logWriteLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		if healthDB != nil {
			if err := healthDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		plans := protected.Group("/nutrition-plans")
		{
			plans.GET("", planHandler.ListPlans)
			plans.POST("", planHandler.CreatePlan)
			plans.GET("/:id", planHandler.GetPlan)

			plans.GET("/:id/logs", logHandler.ListLogs)
			plans.GET("/:id/logs/:date", logHandler.GetLog)

			write := plans.Group("")
			if logWriteLimiter != nil {
				write.Use(logWriteLimiter.RateLimitMiddleware())
			}
			write.POST("/:id/logs", logHandler.SaveLog)
			write.PATCH("/:id/logs/:date/details", logHandler.UpdateLogDetails)
		}
	}

	return router
}
