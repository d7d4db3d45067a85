package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/curriculum/backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// mysqlDuplicateEntry is the server error number of a unique key violation
const mysqlDuplicateEntry = 1062

// lessonSelect selects a lesson together with its section and (optional) course
const lessonSelect = `
		SELECT
			l.id, l.slug, l.section_id, l.title, COALESCE(l.content, ''), l.position, COALESCE(l.url, ''),
			l.is_project, l.created_at, l.updated_at,
			s.course_id, s.title, s.position,
			c.id, c.title
		FROM lessons l
		JOIN sections s ON s.id = l.section_id
		LEFT JOIN courses c ON c.id = s.course_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

type lessonRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB, logger *zap.Logger) *lessonRepository {
	return &lessonRepository{
		db:     db,
		logger: logger,
	}
}

// scanLesson scans a row produced by lessonSelect
func scanLesson(row rowScanner) (*models.Lesson, error) {
	var lesson models.Lesson
	var section models.Section
	var courseID sql.NullInt64
	var courseTitle sql.NullString

	err := row.Scan(
		&lesson.ID,
		&lesson.Slug,
		&lesson.SectionID,
		&lesson.Title,
		&lesson.Content,
		&lesson.Position,
		&lesson.URL,
		&lesson.IsProject,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
		&section.CourseID,
		&section.Title,
		&section.Position,
		&courseID,
		&courseTitle,
	)
	if err != nil {
		return nil, err
	}

	section.ID = lesson.SectionID
	lesson.Section = &section
	if courseID.Valid {
		lesson.Course = &models.Course{
			ID:    int(courseID.Int64),
			Title: courseTitle.String,
		}
	}

	return &lesson, nil
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := lessonSelect + `
		WHERE l.id = ?
		LIMIT 1
	`

	lesson, err := scanLesson(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrLessonNotFound
	}
	if err != nil {
		r.logger.Error("failed to query lesson by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return lesson, nil
}

// GetBySlug retrieves a lesson by its slug
func (r *lessonRepository) GetBySlug(ctx context.Context, slug string) (*models.Lesson, error) {
	query := lessonSelect + `
		WHERE l.slug = ?
		LIMIT 1
	`

	lesson, err := scanLesson(r.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrLessonNotFound
	}
	if err != nil {
		r.logger.Error("failed to query lesson by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to get lesson by slug: %w", err)
	}

	return lesson, nil
}

// GetAllWithURL retrieves all lessons which have an upstream content path, ordered by ID
func (r *lessonRepository) GetAllWithURL(ctx context.Context) ([]models.Lesson, error) {
	query := lessonSelect + `
		WHERE l.url IS NOT NULL AND l.url != ''
		ORDER BY l.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query lessons with url", zap.Error(err))
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			r.logger.Error("failed to scan lesson", zap.Error(err))
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetCourseOrder retrieves the lessons of a course in curriculum order.
//
// Curriculum order is the section position first, then the lesson position.
func (r *lessonRepository) GetCourseOrder(ctx context.Context, courseID int) ([]models.Lesson, error) {
	query := `
		SELECT l.id, l.slug, l.section_id, l.title, l.position, l.is_project
		FROM lessons l
		JOIN sections s ON s.id = l.section_id
		WHERE s.course_id = ?
		ORDER BY s.position, l.position
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		r.logger.Error("failed to query course lessons", zap.Error(err), zap.Int("course_id", courseID))
		return nil, fmt.Errorf("failed to query course lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.Slug,
			&lesson.SectionID,
			&lesson.Title,
			&lesson.Position,
			&lesson.IsProject,
		)
		if err != nil {
			r.logger.Error("failed to scan lesson", zap.Error(err))
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// CountInSectionUpTo counts the lessons of a section whose position is less than or equal to position
func (r *lessonRepository) CountInSectionUpTo(ctx context.Context, sectionID, position int) (int, error) {
	query := `SELECT COUNT(*) FROM lessons WHERE section_id = ? AND position <= ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, sectionID, position).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count section lessons: %w", err)
	}

	return count, nil
}

// ExistsBySlug checks if a lesson other than excludeID uses the given slug
//
// Pass 0 as excludeID to check against every lesson.
func (r *lessonRepository) ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM lessons WHERE slug = ? AND id != ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check lesson slug existence: %w", err)
	}

	return exists, nil
}

// ExistsByPosition checks if a lesson other than excludeID uses the given position
//
// Positions are unique across all lessons, not only inside a section.
func (r *lessonRepository) ExistsByPosition(ctx context.Context, position int, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM lessons WHERE position = ? AND id != ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, position, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check lesson position existence: %w", err)
	}

	return exists, nil
}

// Create creates a new lesson
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	query := `
		INSERT INTO lessons (slug, section_id, title, content, position, url, is_project)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		lesson.Slug,
		lesson.SectionID,
		lesson.Title,
		nullableString(lesson.Content),
		lesson.Position,
		nullableString(lesson.URL),
		lesson.IsProject,
	)
	if err != nil {
		if taken := duplicateKeyError(err); taken != nil {
			return taken
		}
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	lesson.ID = int(id)
	return nil
}

// Update writes all editable fields of a lesson
func (r *lessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	query := `
		UPDATE lessons
		SET slug = ?, section_id = ?, title = ?, content = ?, position = ?, url = ?, is_project = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		lesson.Slug,
		lesson.SectionID,
		lesson.Title,
		nullableString(lesson.Content),
		lesson.Position,
		nullableString(lesson.URL),
		lesson.IsProject,
		lesson.ID,
	)
	if err != nil {
		if taken := duplicateKeyError(err); taken != nil {
			return taken
		}
		return fmt.Errorf("failed to update lesson: %w", err)
	}

	return checkRowsAffected(result, models.ErrLessonNotFound)
}

// UpdateContent writes only the content of a lesson
func (r *lessonRepository) UpdateContent(ctx context.Context, id int, content string) error {
	query := `UPDATE lessons SET content = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, content, id)
	if err != nil {
		return fmt.Errorf("failed to update lesson content: %w", err)
	}

	return checkRowsAffected(result, models.ErrLessonNotFound)
}

// Delete deletes a lesson and its completions in one transaction
func (r *lessonRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lesson_completions WHERE lesson_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete lesson completions: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM lessons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if err := checkRowsAffected(result, models.ErrLessonNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// checkRowsAffected returns notFound when the statement changed no row
func checkRowsAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

// duplicateKeyError maps a violation of a lessons unique key to its model error.
// It returns nil for any other error.
func duplicateKeyError(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlDuplicateEntry {
		return nil
	}

	switch {
	case strings.Contains(mysqlErr.Message, "uq_lessons_position"):
		return models.ErrPositionTaken
	case strings.Contains(mysqlErr.Message, "uq_lessons_slug"):
		return models.ErrSlugTaken
	}
	return nil
}

// nullableString maps an empty string to NULL
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
