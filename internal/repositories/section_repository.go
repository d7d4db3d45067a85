package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/curriculum/backend/internal/models"
)

type sectionRepository struct {
	db *sql.DB
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *sql.DB) *sectionRepository {
	return &sectionRepository{
		db: db,
	}
}

// GetWithCourse retrieves a section and the course it belongs to.
//
// The returned course is nil when the section references no existing course.
func (r *sectionRepository) GetWithCourse(ctx context.Context, id int) (*models.Section, *models.Course, error) {
	query := `
		SELECT s.id, s.course_id, s.title, s.position, c.id, c.title
		FROM sections s
		LEFT JOIN courses c ON c.id = s.course_id
		WHERE s.id = ?
		LIMIT 1
	`

	var section models.Section
	var courseID sql.NullInt64
	var courseTitle sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&section.ID,
		&section.CourseID,
		&section.Title,
		&section.Position,
		&courseID,
		&courseTitle,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, models.ErrSectionNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get section by id: %w", err)
	}

	if !courseID.Valid {
		return &section, nil, nil
	}
	return &section, &models.Course{ID: int(courseID.Int64), Title: courseTitle.String}, nil
}
