package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/curriculum/backend/internal/models"
)

type lessonCompletionRepository struct {
	db *sql.DB
}

// NewLessonCompletionRepository creates a new lesson completion repository
func NewLessonCompletionRepository(db *sql.DB) *lessonCompletionRepository {
	return &lessonCompletionRepository{
		db: db,
	}
}

// Create records that a student completed a lesson.
//
// Completing an already completed lesson is a no-op.
func (r *lessonCompletionRepository) Create(ctx context.Context, lessonID, studentID int) error {
	query := `INSERT IGNORE INTO lesson_completions (lesson_id, student_id) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, lessonID, studentID)
	if err != nil {
		return fmt.Errorf("failed to create lesson completion: %w", err)
	}

	return nil
}

// Delete removes the completion of a lesson by a student
func (r *lessonCompletionRepository) Delete(ctx context.Context, lessonID, studentID int) error {
	query := `DELETE FROM lesson_completions WHERE lesson_id = ? AND student_id = ?`

	result, err := r.db.ExecContext(ctx, query, lessonID, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete lesson completion: %w", err)
	}

	return checkRowsAffected(result, models.ErrCompletionNotFound)
}

// Exists checks if a student completed a lesson
func (r *lessonCompletionRepository) Exists(ctx context.Context, lessonID, studentID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM lesson_completions WHERE lesson_id = ? AND student_id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, lessonID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check lesson completion existence: %w", err)
	}

	return exists, nil
}

// GetStudentIDsByLessonID retrieves the IDs of the students who completed a lesson, in completion order
func (r *lessonCompletionRepository) GetStudentIDsByLessonID(ctx context.Context, lessonID int) ([]int, error) {
	query := `
		SELECT student_id
		FROM lesson_completions
		WHERE lesson_id = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson completions: %w", err)
	}
	defer rows.Close()

	var studentIDs []int
	for rows.Next() {
		var studentID int
		if err := rows.Scan(&studentID); err != nil {
			return nil, fmt.Errorf("failed to scan lesson completion: %w", err)
		}
		studentIDs = append(studentIDs, studentID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return studentIDs, nil
}
