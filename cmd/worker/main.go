package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/curriculum/backend/internal/config"
	"github.com/curriculum/backend/internal/database"
	"github.com/curriculum/backend/internal/github"
	"github.com/curriculum/backend/internal/logger"
	"github.com/curriculum/backend/internal/repositories"
	"github.com/curriculum/backend/internal/services"
	"github.com/curriculum/backend/internal/tasks"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

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

	logger.Logger.Info("Starting Content Import Worker")

	// Connect to database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

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

	githubClient, err := github.NewClient(github.Options{
		Token:   cfg.GitHub.Token,
		BaseURL: cfg.GitHub.BaseURL,
		Timeout: cfg.GitHub.Timeout,
	}, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create GitHub client", zap.Error(err))
	}

	lessonRepo := repositories.NewLessonRepository(db, logger.Logger)
	importRunRepo := repositories.NewContentImportRunRepository(rdb, logger.Logger)
	importService := services.NewContentImportService(lessonRepo, githubClient, cfg.GitHub.Repository, logger.Logger)

	// Create Asynq server; one import at a time
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				tasks.QueueImports: 1,
			},
			Logger: logger.Logger.Sugar(),
		},
	)

	// Register task handlers
	importHandler := tasks.NewContentImportHandler(importService, importRunRepo, logger.Logger)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeContentImport, importHandler.HandleContentImport)

	// Start worker
	if err := srv.Start(mux); err != nil {
		logger.Logger.Fatal("Failed to start worker", zap.Error(err))
	}

	logger.Logger.Info("Worker started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down worker...")
	srv.Shutdown()
	logger.Logger.Info("Worker exited")
}
