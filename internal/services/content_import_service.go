package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/curriculum/backend/internal/models"
	"go.uber.org/zap"
)

// ContentHost is the interface that wraps access to the upstream curriculum files
type ContentHost interface {
	// Method Contents retrieve the base64 encoded content of the file at "path" in "repository" ("owner/name").
	//
	// Any failure of the host is returned as an error together with an empty string.
	Contents(ctx context.Context, repository, path string) (string, error)
}

// LessonContentRepository is the interface that wraps methods used to synchronise lesson content
type LessonContentRepository interface {
	// Method GetAllWithURL retrieve every lesson with a non-empty upstream content path.
	GetAllWithURL(ctx context.Context) ([]models.Lesson, error)
	// Method UpdateContent write only the content of a lesson.
	//
	// If the lesson does not exist, models.ErrLessonNotFound is returned.
	UpdateContent(ctx context.Context, id int, content string) error
}

type contentImportService struct {
	repo       LessonContentRepository
	host       ContentHost
	repository string
	logger     *zap.Logger
}

// NewContentImportService creates a new content import service
//
// "repository" is the upstream repository ("owner/name") lesson paths are resolved against.
func NewContentImportService(repo LessonContentRepository, host ContentHost, repository string, logger *zap.Logger) *contentImportService {
	return &contentImportService{
		repo:       repo,
		host:       host,
		repository: repository,
		logger:     logger,
	}
}

// ImportContent replaces the content of lesson with the upstream file at lesson.URL
//
// The upstream file is fetched and decoded once per lesson value. Nothing is written when the decoded
// content equals the current content. Failures of the content host are logged and reported through a
// failed result with a nil error; only persistence errors are returned.
func (s *contentImportService) ImportContent(ctx context.Context, lesson *models.Lesson) (models.ContentImportResult, error) {
	result := models.ContentImportResult{
		LessonID: lesson.ID,
		Title:    lesson.Title,
	}

	content, err := lesson.DecodedContent(func() (string, error) {
		return s.fetch(ctx, lesson.URL)
	})
	if err != nil {
		s.logger.Error(fmt.Sprintf(`Failed to import "%s" content`, lesson.Title),
			zap.Error(err),
			zap.Int("lesson_id", lesson.ID),
			zap.String("url", lesson.URL),
		)
		return failedImport(result, err), nil
	}

	if content == lesson.Content {
		result.Status = models.ContentImportUnchanged
		return result, nil
	}

	if err := validateContent(content); err != nil {
		return failedImport(result, err), nil
	}

	if err := s.repo.UpdateContent(ctx, lesson.ID, content); err != nil {
		s.logger.Error("failed to save imported content", zap.Error(err), zap.Int("lesson_id", lesson.ID))
		return failedImport(result, err), fmt.Errorf("failed to save lesson content: %w", err)
	}

	lesson.Content = content
	result.Status = models.ContentImportUpdated
	return result, nil
}

// ImportAll imports the content of every lesson with an upstream path
//
// A persistence error stops the run; the summary collected so far is returned with it.
func (s *contentImportService) ImportAll(ctx context.Context) (*models.ContentImportSummary, error) {
	lessons, err := s.repo.GetAllWithURL(ctx)
	if err != nil {
		s.logger.Error("failed to get lessons for import", zap.Error(err))
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	summary := &models.ContentImportSummary{Results: make([]models.ContentImportResult, 0, len(lessons))}
	for i := range lessons {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := s.ImportContent(ctx, &lessons[i])
		summary.Add(result)
		if err != nil {
			return summary, err
		}
	}

	s.logger.Info("content import finished",
		zap.Int("updated", summary.Updated),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// fetch retrieves and decodes the upstream file at path
func (s *contentImportService) fetch(ctx context.Context, path string) (string, error) {
	encoded, err := s.host.Contents(ctx, s.repository, path)
	if err != nil {
		return "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode content: %w", err)
	}

	return string(decoded), nil
}

func failedImport(result models.ContentImportResult, err error) models.ContentImportResult {
	result.Status = models.ContentImportFailed
	result.Err = err
	result.Error = err.Error()
	return result
}
