package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/curriculum/backend/internal/models"
	"go.uber.org/zap"
)

// LessonCompletionRepository is the interface that wraps methods for LessonCompletions table data access
type LessonCompletionRepository interface {
	// Method Create record that "studentID" completed "lessonID".
	//
	// Recording an existing completion is not an error.
	Create(ctx context.Context, lessonID, studentID int) error
	// Method Delete remove the completion of "lessonID" by "studentID".
	//
	// If there is no such completion, models.ErrCompletionNotFound is returned.
	Delete(ctx context.Context, lessonID, studentID int) error
	// Method Exists check if "studentID" completed "lessonID".
	Exists(ctx context.Context, lessonID, studentID int) (bool, error)
	// Method GetStudentIDsByLessonID retrieve the IDs of the students who completed "lessonID", in completion order.
	GetStudentIDsByLessonID(ctx context.Context, lessonID int) ([]int, error)
}

// LessonLookup is the interface that wraps lesson lookup by slug
type LessonLookup interface {
	GetBySlug(ctx context.Context, slugOrID string) (*models.Lesson, error)
}

type lessonCompletionService struct {
	repo    LessonCompletionRepository
	lessons LessonLookup
	logger  *zap.Logger
}

// NewLessonCompletionService creates a new lesson completion service
func NewLessonCompletionService(repo LessonCompletionRepository, lessons LessonLookup, logger *zap.Logger) *lessonCompletionService {
	return &lessonCompletionService{
		repo:    repo,
		lessons: lessons,
		logger:  logger,
	}
}

// Complete marks the lesson identified by slug as completed by the student
//
// Completing a lesson twice is not an error.
func (s *lessonCompletionService) Complete(ctx context.Context, slug string, studentID int) (*models.CompletionStatusResponse, error) {
	if studentID <= 0 {
		return nil, models.ErrInvalidID
	}

	lesson, err := s.lessons.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, lesson.ID, studentID); err != nil {
		s.logger.Error("failed to complete lesson", zap.Error(err), zap.Int("lesson_id", lesson.ID), zap.Int("student_id", studentID))
		return nil, fmt.Errorf("failed to complete lesson: %w", err)
	}

	return &models.CompletionStatusResponse{LessonID: lesson.ID, Completed: true}, nil
}

// Uncomplete removes the completion of the lesson identified by slug for the student
func (s *lessonCompletionService) Uncomplete(ctx context.Context, slug string, studentID int) (*models.CompletionStatusResponse, error) {
	if studentID <= 0 {
		return nil, models.ErrInvalidID
	}

	lesson, err := s.lessons.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, lesson.ID, studentID); err != nil {
		if errors.Is(err, models.ErrCompletionNotFound) {
			return nil, err
		}
		s.logger.Error("failed to uncomplete lesson", zap.Error(err), zap.Int("lesson_id", lesson.ID), zap.Int("student_id", studentID))
		return nil, fmt.Errorf("failed to uncomplete lesson: %w", err)
	}

	return &models.CompletionStatusResponse{LessonID: lesson.ID, Completed: false}, nil
}

// CompletingStudents returns the IDs of the students who completed the lesson
func (s *lessonCompletionService) CompletingStudents(ctx context.Context, lessonID int) ([]int, error) {
	if lessonID <= 0 {
		return nil, models.ErrInvalidID
	}

	studentIDs, err := s.repo.GetStudentIDsByLessonID(ctx, lessonID)
	if err != nil {
		s.logger.Error("failed to get completing students", zap.Error(err), zap.Int("lesson_id", lessonID))
		return nil, fmt.Errorf("failed to get completing students: %w", err)
	}
	if studentIDs == nil {
		studentIDs = []int{}
	}

	return studentIDs, nil
}

// IsCompleted reports whether the student completed the lesson
func (s *lessonCompletionService) IsCompleted(ctx context.Context, lessonID, studentID int) (bool, error) {
	if lessonID <= 0 || studentID <= 0 {
		return false, models.ErrInvalidID
	}

	completed, err := s.repo.Exists(ctx, lessonID, studentID)
	if err != nil {
		return false, fmt.Errorf("failed to check lesson completion: %w", err)
	}
	return completed, nil
}
