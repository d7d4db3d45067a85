package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/curriculum/backend/internal/models"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ContentImporter is the interface that wraps the bulk import run by the worker
type ContentImporter interface {
	// ImportAll imports the upstream content of every lesson with a url
	//
	// The summary is returned together with the error when the run stops early.
	ImportAll(ctx context.Context) (*models.ContentImportSummary, error)
}

// ContentImportRunRecorder is the interface that wraps storing the outcome of a finished import
type ContentImportRunRecorder interface {
	SaveLatest(ctx context.Context, run *models.ContentImportRun) error
}

// ContentImportHandler processes TypeContentImport tasks
type ContentImportHandler struct {
	importer ContentImporter
	runs     ContentImportRunRecorder
	logger   *zap.Logger
}

// NewContentImportHandler creates a new content import task handler
func NewContentImportHandler(importer ContentImporter, runs ContentImportRunRecorder, logger *zap.Logger) *ContentImportHandler {
	return &ContentImportHandler{
		importer: importer,
		runs:     runs,
		logger:   logger,
	}
}

// HandleContentImport runs one bulk import and records its outcome
func (h *ContentImportHandler) HandleContentImport(ctx context.Context, t *asynq.Task) error {
	var payload contentImportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid content import payload: %v: %w", err, asynq.SkipRetry)
	}

	taskID, _ := asynq.GetTaskID(ctx)
	run := &models.ContentImportRun{
		TaskID:    taskID,
		Trigger:   payload.Trigger,
		StartedAt: time.Now().UTC(),
	}

	summary, err := h.importer.ImportAll(ctx)
	run.FinishedAt = time.Now().UTC()
	run.Summary = summary
	if err != nil {
		run.Error = err.Error()
	}

	// Recorded even when the task deadline has passed
	if saveErr := h.runs.SaveLatest(context.WithoutCancel(ctx), run); saveErr != nil {
		h.logger.Error("Failed to save content import run", zap.String("task_id", taskID), zap.Error(saveErr))
	}

	duration := run.FinishedAt.Sub(run.StartedAt)
	if err != nil {
		h.logger.Error("Content import failed",
			zap.String("task_id", taskID),
			zap.String("trigger", string(payload.Trigger)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return fmt.Errorf("content import failed: %w", err)
	}

	h.logger.Info("Content import completed",
		zap.String("task_id", taskID),
		zap.String("trigger", string(payload.Trigger)),
		zap.Int("updated", summary.Updated),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", duration),
	)
	return nil
}
