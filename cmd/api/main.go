package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-backend/config"
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/redis"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	moderationRepo := postgres.NewModerationRepository(dbPool)
	reportRepo := postgres.NewReportRepository(dbPool)

	// 6. Setup Token Manager
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	// Gin binds request structs with its own validator instance, so the
	// custom tags have to be registered there too.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, cfg.AutoApproveJobs)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, userRepo, profileRepo)
	moderationUC := usecase.NewModerationUsecase(moderationRepo)
	reportUC := usecase.NewReportUsecase(reportRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		MessageUC:     messageUC,
		ModerationUC:  moderationUC,
		ReportUC:      reportUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Log.Error("Failed to close Redis connection", "error", err)
	}

	logger.Log.Info("Server exiting")
}
