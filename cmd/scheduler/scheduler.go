package main

import (
	"context"
	"fmt"
	"time"

	"github.com/curriculum/backend/internal/models"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// enqueueTimeout bounds one call to the task queue
const enqueueTimeout = 10 * time.Second

// ImportEnqueuer defines the queueing done on every tick
type ImportEnqueuer interface {
	// EnqueueImportAll queues an import of the upstream content of every lesson with a url
	EnqueueImportAll(ctx context.Context, trigger models.ContentImportTrigger) (*models.ContentImportJob, error)
}

// Scheduler queues the content import on a cron schedule
//
// The import itself runs on the worker.
type Scheduler struct {
	cron     *cron.Cron
	enqueuer ImportEnqueuer
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewScheduler creates a scheduler queueing an import on spec
//
// spec uses the standard five field cron format.
func NewScheduler(spec string, enqueuer ImportEnqueuer, logger *zap.Logger) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		enqueuer: enqueuer,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}

	s.cron = cron.New(cron.WithChain(
		cron.Recover(cronLogger{logger}),
		cron.SkipIfStillRunning(cronLogger{logger}),
	))
	if _, err := s.cron.AddFunc(spec, s.enqueueImport); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid import schedule %q: %w", spec, err)
	}

	return s, nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.logger.Info("Scheduler started", zap.Time("next_run", entry.Next))
	}
}

// Stop cancels a pending enqueue and waits for it to return
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// enqueueImport queues one bulk import
func (s *Scheduler) enqueueImport() {
	ctx, cancel := context.WithTimeout(s.ctx, enqueueTimeout)
	defer cancel()

	job, err := s.enqueuer.EnqueueImportAll(ctx, models.ContentImportTriggerSchedule)
	if err != nil {
		s.logger.Error("Failed to enqueue content import", zap.Error(err))
		return
	}

	s.logger.Info("Content import enqueued", zap.String("task_id", job.TaskID), zap.String("queue", job.Queue))
}

// cronLogger adapts zap to the cron.Logger interface
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Sugar().Infow(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
