package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kinetra/fitpulse-v2/backend/config"
	"github.com/kinetra/fitpulse-v2/backend/internal/api"
	"github.com/kinetra/fitpulse-v2/backend/internal/database"
	"github.com/kinetra/fitpulse-v2/backend/internal/middleware"
	"github.com/kinetra/fitpulse-v2/backend/internal/router"
	"github.com/kinetra/fitpulse-v2/backend/internal/server"
	"github.com/kinetra/fitpulse-v2/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthDB, err := database.NewSQL(cfg)
	if err != nil {
		log.Fatalf("Failed to open health-check connection: %v", err)
	}

	// Redis is optional: without it the API serves uncached and unthrottled.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	planService := service.NewNutritionPlanService(db, redisClient)
	logService := service.NewNutritionLogService(db)

	var logWriteLimiter *middleware.RateLimiter
	if redisClient != nil {
		logWriteLimiter = middleware.NewLogWriteRateLimiter(redisClient)
	}

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewNutritionPlanHandler(planService),
		api.NewNutritionLogHandler(planService, logService),
		authService,
		healthDB,
		logWriteLimiter,
	)

	srv := server.New(engine)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		errChan <- srv.Start(cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
