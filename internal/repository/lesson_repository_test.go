package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/online-school-api/internal/models"
)

var lessonCols = []string{"id", "course_id", "title", "content", "lesson_order", "duration_minutes", "lesson_date"}

func TestLessonRepositoryListByCourseFilter(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	rows := sqlmock.NewRows(lessonCols).
		AddRow(1, 3, "Introduction", nil, 1, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, title, content, lesson_order, duration_minutes, lesson_date FROM lessons WHERE course_id = $1 ORDER BY id ASC")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	courseID := int64(3)
	lessons, err := repo.List(context.Background(), models.LessonFilter{CourseID: &courseID})
	require.NoError(t, err)
	assert.Len(t, lessons, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepositoryListByCourseOrdersByLessonOrder(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	rows := sqlmock.NewRows(lessonCols).
		AddRow(2, 3, "Introduction", nil, 1, nil, nil).
		AddRow(1, 3, "Advanced", nil, 2, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM lessons WHERE course_id = $1 ORDER BY lesson_order ASC")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	lessons, err := repo.ListByCourse(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "Introduction", lessons[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	returned := sqlmock.NewRows(lessonCols).
		AddRow(9, 3, "Introduction", nil, nil, nil, nil)
	mock.ExpectQuery("INSERT INTO lessons").
		WithArgs(int64(3), "Introduction", nil, nil, nil, nil).
		WillReturnRows(returned)

	lesson := &models.Lesson{CourseID: 3, Title: "Introduction"}
	require.NoError(t, repo.Create(context.Background(), lesson))
	assert.Equal(t, int64(9), lesson.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
