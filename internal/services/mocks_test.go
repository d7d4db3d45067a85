package services

import (
	"context"

	"github.com/curriculum/backend/internal/models"
)

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lessons        map[int]*models.Lesson
	courseOrder    []models.Lesson
	withURL        []models.Lesson
	sectionCount   int
	takenSlugs     map[string]int
	takenPositions map[int]int
	createdID      int

	err            error
	getErr         error
	createErr      error
	existsErr      error
	updateErr      error
	deleteErr      error
	courseOrderErr error

	created        *models.Lesson
	updated        *models.Lesson
	contentUpdates []string
	deletedID      int
}

func (m *mockLessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	lesson, ok := m.lessons[id]
	if !ok {
		return nil, models.ErrLessonNotFound
	}
	copied := *lesson
	return &copied, nil
}

func (m *mockLessonRepository) GetBySlug(ctx context.Context, slug string) (*models.Lesson, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, lesson := range m.lessons {
		if lesson.Slug == slug {
			copied := *lesson
			return &copied, nil
		}
	}
	return nil, models.ErrLessonNotFound
}

func (m *mockLessonRepository) GetAllWithURL(ctx context.Context) ([]models.Lesson, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.withURL, nil
}

func (m *mockLessonRepository) GetCourseOrder(ctx context.Context, courseID int) ([]models.Lesson, error) {
	if m.courseOrderErr != nil {
		return nil, m.courseOrderErr
	}
	return m.courseOrder, nil
}

func (m *mockLessonRepository) CountInSectionUpTo(ctx context.Context, sectionID, position int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.sectionCount, nil
}

func (m *mockLessonRepository) ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	id, ok := m.takenSlugs[slug]
	return ok && id != excludeID, nil
}

func (m *mockLessonRepository) ExistsByPosition(ctx context.Context, position int, excludeID int) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	id, ok := m.takenPositions[position]
	return ok && id != excludeID, nil
}

func (m *mockLessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	if m.err != nil {
		return m.err
	}
	if m.createErr != nil {
		return m.createErr
	}
	lesson.ID = m.createdID
	m.created = lesson
	return nil
}

func (m *mockLessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = lesson
	return nil
}

func (m *mockLessonRepository) UpdateContent(ctx context.Context, id int, content string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.contentUpdates = append(m.contentUpdates, content)
	return nil
}

func (m *mockLessonRepository) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

// mockSectionRepository is a mock implementation of SectionRepository
type mockSectionRepository struct {
	section *models.Section
	course  *models.Course
	err     error
	calls   int
}

func (m *mockSectionRepository) GetWithCourse(ctx context.Context, id int) (*models.Section, *models.Course, error) {
	m.calls++
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.section, m.course, nil
}

// mockProjectRepository is a mock implementation of ProjectRepository
type mockProjectRepository struct {
	project *models.Project
	err     error
}

func (m *mockProjectRepository) GetByLessonID(ctx context.Context, lessonID int) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

// mockContentHost is a mock implementation of ContentHost
type mockContentHost struct {
	content string
	err     error
	calls   int
	paths   []string
}

func (m *mockContentHost) Contents(ctx context.Context, repository, path string) (string, error) {
	m.calls++
	m.paths = append(m.paths, repository+":"+path)
	if m.err != nil {
		return "", m.err
	}
	return m.content, nil
}

// mockCompletionRepository is a mock implementation of LessonCompletionRepository
type mockCompletionRepository struct {
	studentIDs []int
	exists     bool
	err        error
	created    [][2]int
	deleted    [][2]int
}

func (m *mockCompletionRepository) Create(ctx context.Context, lessonID, studentID int) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, [2]int{lessonID, studentID})
	return nil
}

func (m *mockCompletionRepository) Delete(ctx context.Context, lessonID, studentID int) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, [2]int{lessonID, studentID})
	return nil
}

func (m *mockCompletionRepository) Exists(ctx context.Context, lessonID, studentID int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.exists, nil
}

func (m *mockCompletionRepository) GetStudentIDsByLessonID(ctx context.Context, lessonID int) ([]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.studentIDs, nil
}

// mockLessonLookup is a mock implementation of LessonLookup
type mockLessonLookup struct {
	lesson *models.Lesson
	err    error
}

func (m *mockLessonLookup) GetBySlug(ctx context.Context, slugOrID string) (*models.Lesson, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lesson, nil
}
