package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/curriculum/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_GetByLessonID(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expected      *models.Project
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, lesson_id, COALESCE\(repo_url, ''\) FROM projects WHERE lesson_id = \?`).
					WithArgs(7).
					WillReturnRows(sqlmock.NewRows([]string{"id", "lesson_id", "repo_url"}).
						AddRow(1, 7, "https://github.com/student/calculator"))
			},
			expected: &models.Project{ID: 1, LessonID: 7, RepoURL: "https://github.com/student/calculator"},
		},
		{
			name: "no project",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, lesson_id.*FROM projects`).
					WithArgs(7).
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, lesson_id.*FROM projects`).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewProjectRepository(db)
			tt.setupMock(mock)

			project, err := repo.GetByLessonID(context.Background(), 7)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, project)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, project)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
