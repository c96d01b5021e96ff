package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vasilikapapa/workout-app/internal/api"
	"github.com/vasilikapapa/workout-app/internal/config"
	"github.com/vasilikapapa/workout-app/internal/migrate"
	"github.com/vasilikapapa/workout-app/internal/repository/postgres"
	"github.com/vasilikapapa/workout-app/internal/service"
)

// @title Workout Planner API
// @version 1.0
// @description REST API for user-owned workout plans, days, sections and exercises.
// @host localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("missing jwt secret (JWT_SECRET)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Migrations ---
	if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// --- Database Connection ---
	db, err := postgres.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("could not connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database connection established")

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(db)
	planRepo := postgres.NewPlanRepo(db)
	dayRepo := postgres.NewDayRepo(db)
	sectionRepo := postgres.NewSectionRepo(db)
	exerciseRepo := postgres.NewExerciseRepo(db)
	ownershipRepo := postgres.NewOwnershipRepo(db)

	// --- Services ---
	resolver := service.NewOwnershipResolver(ownershipRepo)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	planService := service.NewPlanService(planRepo, resolver)
	dayService := service.NewDayService(dayRepo, sectionRepo, resolver)
	exerciseService := service.NewExerciseService(exerciseRepo, resolver)

	// --- HTTP ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(api.RequestLogger(logger), gin.Recovery())
	api.SetupRoutes(router, cfg.JWT.Secret, authService, planService, dayService, exerciseService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("server exiting")
}
