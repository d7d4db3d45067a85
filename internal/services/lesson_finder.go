package services

import (
	"context"
	"fmt"

	"github.com/curriculum/backend/internal/models"
)

// CourseOrderRepository is the interface that wraps the curriculum order query
type CourseOrderRepository interface {
	// Method GetCourseOrder retrieve the lessons of a course in curriculum order.
	//
	// Curriculum order is the position of the section first and the position of the lesson second.
	// Returned lessons carry only their ID, slug, section, title, position and project flag.
	GetCourseOrder(ctx context.Context, courseID int) ([]models.Lesson, error)
}

// lessonFinder locates the neighbours of a lesson in the curriculum order of its course
type lessonFinder struct {
	repo CourseOrderRepository
}

func newLessonFinder(repo CourseOrderRepository) *lessonFinder {
	return &lessonFinder{repo: repo}
}

// Next returns the lesson following lesson in its course
//
// lesson.Section must be loaded. ErrNoNextLesson is returned for the last lesson of the course.
func (f *lessonFinder) Next(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	return f.neighbour(ctx, lesson, 1, models.ErrNoNextLesson)
}

// Prev returns the lesson preceding lesson in its course
//
// lesson.Section must be loaded. ErrNoPrevLesson is returned for the first lesson of the course.
func (f *lessonFinder) Prev(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	return f.neighbour(ctx, lesson, -1, models.ErrNoPrevLesson)
}

func (f *lessonFinder) neighbour(ctx context.Context, lesson *models.Lesson, offset int, edge error) (*models.Lesson, error) {
	if lesson.Section == nil {
		return nil, fmt.Errorf("section of lesson %d is not loaded", lesson.ID)
	}

	order, err := f.repo.GetCourseOrder(ctx, lesson.Section.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course order: %w", err)
	}

	for i := range order {
		if order[i].ID != lesson.ID {
			continue
		}
		j := i + offset
		if j < 0 || j >= len(order) {
			return nil, edge
		}
		return &order[j], nil
	}

	return nil, models.ErrLessonNotFound
}
