package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/curriculum/backend/internal/models"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// latestImportRunKey holds the JSON encoded outcome of the last finished bulk import
const latestImportRunKey = "curriculum:content_import:latest"

// redisStringCommands is the subset of *redis.Client used to store import runs
type redisStringCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type contentImportRunRepository struct {
	redis  redisStringCommands
	logger *zap.Logger
}

// NewContentImportRunRepository creates a new content import run repository
func NewContentImportRunRepository(rdb redisStringCommands, logger *zap.Logger) *contentImportRunRepository {
	return &contentImportRunRepository{
		redis:  rdb,
		logger: logger,
	}
}

// SaveLatest replaces the stored outcome of the last bulk import
func (r *contentImportRunRepository) SaveLatest(ctx context.Context, run *models.ContentImportRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode import run: %w", err)
	}

	if err := r.redis.Set(ctx, latestImportRunKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save import run: %w", err)
	}

	return nil
}

// GetLatest retrieves the outcome of the last bulk import
//
// If no run has finished yet, models.ErrNoImportRun is returned.
func (r *contentImportRunRepository) GetLatest(ctx context.Context) (*models.ContentImportRun, error) {
	data, err := r.redis.Get(ctx, latestImportRunKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrNoImportRun
		}
		return nil, fmt.Errorf("failed to get import run: %w", err)
	}

	var run models.ContentImportRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode import run: %w", err)
	}

	return &run, nil
}
