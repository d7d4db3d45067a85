package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/curriculum/backend/docs"
	"github.com/curriculum/backend/internal/auth"
	"github.com/curriculum/backend/internal/config"
	"github.com/curriculum/backend/internal/database"
	"github.com/curriculum/backend/internal/github"
	"github.com/curriculum/backend/internal/handlers"
	"github.com/curriculum/backend/internal/logger"
	"github.com/curriculum/backend/internal/middleware"
	"github.com/curriculum/backend/internal/repositories"
	"github.com/curriculum/backend/internal/services"
	"github.com/curriculum/backend/internal/tasks"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Curriculum Lessons API
// @version 1.0
// @description API for curriculum lessons, their navigation, completion and upstream content import

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Curriculum Lessons API")

	// Connect to database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.Migrate(db, "migrations"); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize upstream content client
	githubClient, err := github.NewClient(github.Options{
		Token:   cfg.GitHub.Token,
		BaseURL: cfg.GitHub.BaseURL,
		Timeout: cfg.GitHub.Timeout,
	}, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create GitHub client", zap.Error(err))
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	// Test Redis connection
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize Asynq client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()

	// Initialize JWT token validator
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize repositories
	lessonRepo := repositories.NewLessonRepository(db, logger.Logger)
	sectionRepo := repositories.NewSectionRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	completionRepo := repositories.NewLessonCompletionRepository(db)
	importRunRepo := repositories.NewContentImportRunRepository(rdb, logger.Logger)

	// Initialize services
	lessonService := services.NewLessonService(lessonRepo, sectionRepo, projectRepo, logger.Logger)
	importService := services.NewContentImportService(lessonRepo, githubClient, cfg.GitHub.Repository, logger.Logger)
	completionService := services.NewLessonCompletionService(completionRepo, lessonService, logger.Logger)
	importEnqueuer := tasks.NewContentImportEnqueuer(asynqClient, cfg.Import.Timeout)

	// Initialize handlers
	lessonHandler := handlers.NewLessonHandler(lessonService, completionService, logger.Logger)
	adminLessonHandler := handlers.NewAdminLessonHandler(lessonService, importService, importEnqueuer, importRunRepo, completionService, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.Auth(tokenGenerator)
	optionalAuthMiddleware := middleware.OptionalAuth(tokenGenerator)
	apiKeyMiddleware := middleware.APIKey(cfg.APIKey)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger.Logger))
	r.Use(middleware.Recovery(logger.Logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimit(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		lessonHandler.RegisterRoutes(r, authMiddleware, optionalAuthMiddleware)
		adminLessonHandler.RegisterRoutes(r, apiKeyMiddleware)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
