// Package tasks defines the asynq tasks that move long running work out of the request path
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/curriculum/backend/internal/models"
	"github.com/hibiken/asynq"
)

const (
	// TypeContentImport imports the upstream content of every lesson with a url
	TypeContentImport = "content:import"
	// QueueImports is the queue content imports are processed from
	QueueImports = "imports"

	defaultImportTimeout = 30 * time.Minute
)

type contentImportPayload struct {
	Trigger models.ContentImportTrigger `json:"trigger"`
}

// NewContentImportTask creates a bulk content import task
func NewContentImportTask(trigger models.ContentImportTrigger) (*asynq.Task, error) {
	payload, err := json.Marshal(contentImportPayload{Trigger: trigger})
	if err != nil {
		return nil, fmt.Errorf("failed to encode content import payload: %w", err)
	}
	return asynq.NewTask(TypeContentImport, payload), nil
}

// TaskClient is the interface that wraps task enqueueing, implemented by *asynq.Client
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ContentImportEnqueuer queues bulk content imports for the worker
type ContentImportEnqueuer struct {
	client  TaskClient
	timeout time.Duration
}

// NewContentImportEnqueuer creates a new content import enqueuer
//
// timeout bounds one run on the worker; zero or less selects 30 minutes.
func NewContentImportEnqueuer(client TaskClient, timeout time.Duration) *ContentImportEnqueuer {
	if timeout <= 0 {
		timeout = defaultImportTimeout
	}
	return &ContentImportEnqueuer{
		client:  client,
		timeout: timeout,
	}
}

// EnqueueImportAll queues one bulk content import
//
// A run is attempted exactly once: a failed import is archived, never retried.
func (e *ContentImportEnqueuer) EnqueueImportAll(ctx context.Context, trigger models.ContentImportTrigger) (*models.ContentImportJob, error) {
	task, err := NewContentImportTask(trigger)
	if err != nil {
		return nil, err
	}

	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueImports),
		asynq.MaxRetry(0),
		asynq.Timeout(e.timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue content import: %w", err)
	}

	return &models.ContentImportJob{
		TaskID:     info.ID,
		Queue:      info.Queue,
		Trigger:    trigger,
		EnqueuedAt: time.Now().UTC(),
	}, nil
}
