package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/curriculum/backend/internal/models"
)

type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *projectRepository {
	return &projectRepository{
		db: db,
	}
}

// GetByLessonID retrieves the project attached to a lesson.
//
// A lesson has at most one project; nil is returned without error when it has none.
func (r *projectRepository) GetByLessonID(ctx context.Context, lessonID int) (*models.Project, error) {
	query := `
		SELECT id, lesson_id, COALESCE(repo_url, '')
		FROM projects
		WHERE lesson_id = ?
		LIMIT 1
	`

	var project models.Project
	err := r.db.QueryRowContext(ctx, query, lessonID).Scan(
		&project.ID,
		&project.LessonID,
		&project.RepoURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project by lesson id: %w", err)
	}

	return &project, nil
}
