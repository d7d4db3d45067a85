package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/curriculum/backend/internal/models"
	"github.com/curriculum/backend/internal/slug"
	"go.uber.org/zap"
)

// LessonRepository is the interface that wraps methods for Lessons table data access
type LessonRepository interface {
	CourseOrderRepository
	// Method GetByID retrieve a lesson by its ID together with its section and course.
	//
	// If the lesson does not exist, models.ErrLessonNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// Method GetBySlug retrieve a lesson by its slug.
	//
	// Please reference GetByID method for more information about error values.
	GetBySlug(ctx context.Context, slug string) (*models.Lesson, error)
	// Method GetAllWithURL retrieve every lesson with a non-empty upstream content path, ordered by ID.
	GetAllWithURL(ctx context.Context) ([]models.Lesson, error)
	// Method CountInSectionUpTo count the lessons of "sectionID" whose position is less than or equal to "position".
	CountInSectionUpTo(ctx context.Context, sectionID, position int) (int, error)
	// Method ExistsBySlug check if a lesson other than "excludeID" uses the slug.
	//
	// Pass 0 as "excludeID" to check against every lesson.
	ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error)
	// Method ExistsByPosition check if a lesson other than "excludeID" uses the position.
	//
	// Please reference ExistsBySlug method for more information about "excludeID" parameter.
	ExistsByPosition(ctx context.Context, position int, excludeID int) (bool, error)
	// Method Create insert a lesson and set its ID.
	Create(ctx context.Context, lesson *models.Lesson) error
	// Method Update write every editable field of a lesson.
	//
	// If the lesson does not exist, models.ErrLessonNotFound is returned.
	Update(ctx context.Context, lesson *models.Lesson) error
	// Method UpdateContent write only the content of a lesson.
	//
	// Please reference Update method for more information about error values.
	UpdateContent(ctx context.Context, id int, content string) error
	// Method Delete remove a lesson together with its completions.
	//
	// Please reference Update method for more information about error values.
	Delete(ctx context.Context, id int) error
}

// SectionRepository is the interface that wraps methods for Sections table data access
type SectionRepository interface {
	// Method GetWithCourse retrieve a section and its course.
	//
	// The course is "nil" when the section has no course.
	// If the section does not exist, models.ErrSectionNotFound is returned.
	GetWithCourse(ctx context.Context, id int) (*models.Section, *models.Course, error)
}

// ProjectRepository is the interface that wraps methods for Projects table data access
type ProjectRepository interface {
	// Method GetByLessonID retrieve the project of a lesson.
	//
	// "nil" is returned without error when the lesson has no project.
	GetByLessonID(ctx context.Context, lessonID int) (*models.Project, error)
}

type lessonService struct {
	repo     LessonRepository
	sections SectionRepository
	projects ProjectRepository
	finder   *lessonFinder
	logger   *zap.Logger
}

// NewLessonService creates a new lesson service
func NewLessonService(repo LessonRepository, sections SectionRepository, projects ProjectRepository, logger *zap.Logger) *lessonService {
	return &lessonService{
		repo:     repo,
		sections: sections,
		projects: projects,
		finder:   newLessonFinder(repo),
		logger:   logger,
	}
}

// GetBySlug retrieves a lesson by its slug
//
// When no lesson has the slug and slugOrID is numeric, the lesson with that ID is returned instead.
func (s *lessonService) GetBySlug(ctx context.Context, slugOrID string) (*models.Lesson, error) {
	lesson, err := s.repo.GetBySlug(ctx, slugOrID)
	if err == nil {
		return lesson, nil
	}
	if !errors.Is(err, models.ErrLessonNotFound) {
		s.logger.Error("failed to get lesson by slug", zap.Error(err), zap.String("slug", slugOrID))
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	id, convErr := strconv.Atoi(slugOrID)
	if convErr != nil || id <= 0 {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// GetByID retrieves a lesson by its ID
func (s *lessonService) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	if id <= 0 {
		return nil, models.ErrInvalidID
	}

	lesson, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrLessonNotFound) {
			return nil, err
		}
		s.logger.Error("failed to get lesson by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return lesson, nil
}

// Create creates a new lesson
//
// Title, section and a positive position are required; content is optional on creation.
// The slug is the title slug, the title and course title slug when the first is taken,
// or the title slug with a random suffix.
func (s *lessonService) Create(ctx context.Context, req models.CreateLessonRequest) (*models.Lesson, error) {
	lesson := &models.Lesson{
		SectionID: req.SectionID,
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Position:  req.Position,
		URL:       strings.TrimSpace(req.URL),
		IsProject: req.IsProject,
	}

	if lesson.Title == "" {
		return nil, models.ErrTitleRequired
	}
	if err := s.loadSection(ctx, lesson); err != nil {
		return nil, err
	}
	if err := s.validatePosition(ctx, lesson); err != nil {
		return nil, err
	}
	if err := s.assignSlug(ctx, lesson); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, lesson); err != nil {
		if errors.Is(err, models.ErrPositionTaken) || errors.Is(err, models.ErrSlugTaken) {
			return nil, err
		}
		s.logger.Error("failed to create lesson", zap.Error(err), zap.String("title", lesson.Title))
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	s.logger.Info("lesson created", zap.Int("lesson_id", lesson.ID), zap.String("slug", lesson.Slug))
	return lesson, nil
}

// Update applies a partial update to a lesson
//
// The resulting content must not be blank. The position is checked for uniqueness only when it changes,
// and the slug is recomputed only when req.RegenerateSlug is set.
func (s *lessonService) Update(ctx context.Context, id int, req models.UpdateLessonRequest) (*models.Lesson, error) {
	if req.IsEmpty() {
		return nil, models.ErrNoFieldsToUpdate
	}

	lesson, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPosition := lesson.Position

	if req.Title != nil {
		lesson.Title = strings.TrimSpace(*req.Title)
		if lesson.Title == "" {
			return nil, models.ErrTitleRequired
		}
	}
	if req.Content != nil {
		lesson.Content = *req.Content
	}
	if req.URL != nil {
		lesson.URL = strings.TrimSpace(*req.URL)
	}
	if req.IsProject != nil {
		lesson.IsProject = *req.IsProject
	}
	if req.SectionID != nil && *req.SectionID != lesson.SectionID {
		lesson.SectionID = *req.SectionID
		if err := s.loadSection(ctx, lesson); err != nil {
			return nil, err
		}
	}

	if err := validateContent(lesson.Content); err != nil {
		return nil, err
	}
	if req.Position != nil {
		lesson.Position = *req.Position
	}
	if lesson.Position != oldPosition {
		if err := s.validatePosition(ctx, lesson); err != nil {
			return nil, err
		}
	}
	if req.RegenerateSlug {
		if err := s.assignSlug(ctx, lesson); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, lesson); err != nil {
		if errors.Is(err, models.ErrLessonNotFound) ||
			errors.Is(err, models.ErrPositionTaken) ||
			errors.Is(err, models.ErrSlugTaken) {
			return nil, err
		}
		s.logger.Error("failed to update lesson", zap.Error(err), zap.Int("lesson_id", id))
		return nil, fmt.Errorf("failed to update lesson: %w", err)
	}

	return lesson, nil
}

// Delete deletes a lesson and its completions
func (s *lessonService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return models.ErrInvalidID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrLessonNotFound) {
			return err
		}
		s.logger.Error("failed to delete lesson", zap.Error(err), zap.Int("lesson_id", id))
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	s.logger.Info("lesson deleted", zap.Int("lesson_id", id))
	return nil
}

// NextLesson returns the lesson following lesson in the curriculum order of its course
//
// models.ErrNoNextLesson is returned for the last lesson of a course.
func (s *lessonService) NextLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	if err := s.ensureSection(ctx, lesson); err != nil {
		return nil, err
	}

	next, err := s.finder.Next(ctx, lesson)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, next.ID)
}

// PrevLesson returns the lesson preceding lesson in the curriculum order of its course
//
// models.ErrNoPrevLesson is returned for the first lesson of a course.
func (s *lessonService) PrevLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	if err := s.ensureSection(ctx, lesson); err != nil {
		return nil, err
	}

	prev, err := s.finder.Prev(ctx, lesson)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, prev.ID)
}

// PositionInSection returns the 1-based rank of lesson among the lessons of its section
func (s *lessonService) PositionInSection(ctx context.Context, lesson *models.Lesson) (int, error) {
	count, err := s.repo.CountInSectionUpTo(ctx, lesson.SectionID, lesson.Position)
	if err != nil {
		s.logger.Error("failed to count section lessons", zap.Error(err), zap.Int("lesson_id", lesson.ID))
		return 0, fmt.Errorf("failed to get position in section: %w", err)
	}
	return count, nil
}

// Details builds the response of a lesson with its derived attributes
func (s *lessonService) Details(ctx context.Context, lesson *models.Lesson) (*models.LessonResponse, error) {
	position, err := s.PositionInSection(ctx, lesson)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.GetByLessonID(ctx, lesson.ID)
	if err != nil {
		s.logger.Error("failed to get lesson project", zap.Error(err), zap.Int("lesson_id", lesson.ID))
		return nil, fmt.Errorf("failed to get lesson project: %w", err)
	}

	response := &models.LessonResponse{
		ID:                lesson.ID,
		Slug:              lesson.Slug,
		SectionID:         lesson.SectionID,
		CourseTitle:       lesson.CourseTitle(),
		Title:             lesson.Title,
		Content:           lesson.Content,
		Position:          lesson.Position,
		PositionInSection: position,
		URL:               lesson.URL,
		Type:              lesson.Type(),
		HasSubmission:     lesson.HasSubmission(),
		HasLivePreview:    lesson.HasLivePreview(),
		Project:           project,
	}
	if lesson.Course != nil {
		response.CourseID = lesson.Course.ID
	}

	return response, nil
}

// loadSection loads the section and course of lesson.SectionID into lesson
func (s *lessonService) loadSection(ctx context.Context, lesson *models.Lesson) error {
	if lesson.SectionID <= 0 {
		return models.ErrSectionRequired
	}

	section, course, err := s.sections.GetWithCourse(ctx, lesson.SectionID)
	if err != nil {
		if errors.Is(err, models.ErrSectionNotFound) {
			return err
		}
		return fmt.Errorf("failed to get section: %w", err)
	}

	lesson.Section = section
	lesson.Course = course
	return nil
}

// ensureSection loads the section of lesson unless it is already present
func (s *lessonService) ensureSection(ctx context.Context, lesson *models.Lesson) error {
	if lesson.Section != nil {
		return nil
	}
	return s.loadSection(ctx, lesson)
}

// validatePosition checks that the position is positive and not used by another lesson
func (s *lessonService) validatePosition(ctx context.Context, lesson *models.Lesson) error {
	if lesson.Position <= 0 {
		return models.ErrPositionRequired
	}

	taken, err := s.repo.ExistsByPosition(ctx, lesson.Position, lesson.ID)
	if err != nil {
		return fmt.Errorf("failed to check position: %w", err)
	}
	if taken {
		return models.ErrPositionTaken
	}
	return nil
}

// assignSlug resolves a unique slug from the lesson's slug candidates
func (s *lessonService) assignSlug(ctx context.Context, lesson *models.Lesson) error {
	exists := func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.ExistsBySlug(ctx, candidate, lesson.ID)
	}

	resolved, err := slug.Resolve(ctx, lesson.SlugCandidates(), exists)
	if err != nil {
		return fmt.Errorf("failed to resolve slug: %w", err)
	}

	lesson.Slug = resolved
	return nil
}

// validateContent checks the presence of content required on every update
func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.ErrContentRequired
	}
	return nil
}
