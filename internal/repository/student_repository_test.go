package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/online-school-api/internal/models"
	appErrors "github.com/noah-isme/online-school-api/pkg/errors"
)

func TestStudentRepositoryListByName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "birth_date", "registration_date"}).
		AddRow(1, "Sam Hill", "sam@school.com", nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, phone, birth_date, registration_date FROM students WHERE name ILIKE $1 ORDER BY id ASC")).
		WithArgs("%sam%").
		WillReturnRows(rows)

	students, err := repo.List(context.Background(), models.StudentFilter{Name: "sam"})
	require.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, "Sam Hill", students[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateDuplicateEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	pqErr := &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "students_email_key"`}
	mock.ExpectQuery("INSERT INTO students").
		WithArgs("Sam Hill", "sam@school.com", nil, nil, nil).
		WillReturnError(pqErr)

	student := &models.Student{Name: "Sam Hill", Email: "sam@school.com"}
	err := repo.Create(context.Background(), student)
	require.Error(t, err)
	assert.True(t, appErrors.IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.DeleteByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM students")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
