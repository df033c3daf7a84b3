package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/online-school-api/internal/models"
	appErrors "github.com/noah-isme/online-school-api/pkg/errors"
)

type mockTeacherRepo struct {
	items      map[int64]*models.Teacher
	listResult []models.Teacher
	listTotal  int
	listErr    error
	createErr  error
	updateErr  error
	affected   int64
	nextID     int64
}

func (m *mockTeacherRepo) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

func (m *mockTeacherRepo) ListPaged(ctx context.Context, filter models.TeacherFilter, limit, offset int) ([]models.Teacher, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	start := offset
	if start > len(m.listResult) {
		start = len(m.listResult)
	}
	end := start + limit
	if end > len(m.listResult) {
		end = len(m.listResult)
	}
	return m.listResult[start:end], m.listTotal, nil
}

func (m *mockTeacherRepo) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if teacher, ok := m.items[id]; ok {
		cp := *teacher
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	teacher.ID = m.nextID
	if m.items == nil {
		m.items = make(map[int64]*models.Teacher)
	}
	cp := *teacher
	m.items[teacher.ID] = &cp
	return nil
}

func (m *mockTeacherRepo) UpdateByID(ctx context.Context, id int64, patch models.TeacherPatch) (int64, error) {
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	return m.affected, nil
}

func (m *mockTeacherRepo) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return m.affected, nil
}

func (m *mockTeacherRepo) DeleteAll(ctx context.Context) (int64, error) {
	return m.affected, nil
}

func (m *mockTeacherRepo) Count(ctx context.Context) (int, error) {
	return len(m.listResult), nil
}

type mockCourseLister struct {
	courses []models.Course
	err     error
}

func (m *mockCourseLister) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func TestTeacherServiceCreateValidation(t *testing.T) {
	svc := NewTeacherService(&mockTeacherRepo{}, &mockCourseLister{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateTeacherRequest{Email: "a@school.com"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Content can not be empty!", appErr.Message)

	_, err = svc.Create(context.Background(), CreateTeacherRequest{Name: "Alice", Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestTeacherServiceCreateDuplicateEmail(t *testing.T) {
	repo := &mockTeacherRepo{createErr: &pq.Error{Code: "23505", Message: "duplicate key value"}}
	svc := NewTeacherService(repo, &mockCourseLister{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateTeacherRequest{Name: "Alice", Email: "alice@school.com"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUniqueViolation.Code, appErr.Code)
	assert.Equal(t, 500, appErr.Status)
	assert.Equal(t, "duplicate key value", appErr.Message)
}

func TestTeacherServiceCreateAssignsID(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewTeacherService(repo, &mockCourseLister{}, nil, nil)

	teacher, err := svc.Create(context.Background(), CreateTeacherRequest{Name: "Alice", Email: "alice@school.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), teacher.ID)
	assert.Equal(t, "Alice", teacher.Name)
}

func TestTeacherServiceGetNotFound(t *testing.T) {
	svc := NewTeacherService(&mockTeacherRepo{}, &mockCourseLister{}, nil, nil)

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Cannot find Teacher with id=42.", appErr.Message)
}

func TestTeacherServiceListPagedMetadata(t *testing.T) {
	teachers := make([]models.Teacher, 7)
	for i := range teachers {
		teachers[i] = models.Teacher{ID: int64(i + 1)}
	}
	repo := &mockTeacherRepo{listResult: teachers, listTotal: 7}
	svc := NewTeacherService(repo, &mockCourseLister{}, nil, nil)

	page, err := svc.ListPaged(context.Background(), models.TeacherFilter{}, models.PageRequest{Page: 2, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Items, 3)
	assert.Equal(t, int64(4), page.Items[0].ID)
}

func TestTeacherServiceListPagedClampsBadInput(t *testing.T) {
	repo := &mockTeacherRepo{listResult: []models.Teacher{{ID: 1}}, listTotal: 1}
	svc := NewTeacherService(repo, &mockCourseLister{}, nil, nil)

	page, err := svc.ListPaged(context.Background(), models.TeacherFilter{}, models.PageRequest{Page: -3, Size: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
}

func TestTeacherServiceUpdateReportsAffected(t *testing.T) {
	repo := &mockTeacherRepo{affected: 1}
	svc := NewTeacherService(repo, &mockCourseLister{}, nil, nil)

	name := "Renamed"
	affected, err := svc.Update(context.Background(), 1, models.TeacherPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	repo.affected = 0
	affected, err = svc.Update(context.Background(), 99, models.TeacherPatch{Name: &name})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestTeacherServiceCourses(t *testing.T) {
	lister := &mockCourseLister{courses: []models.Course{{ID: 1, Name: "Go Basics"}}}
	svc := NewTeacherService(&mockTeacherRepo{}, lister, nil, nil)

	courses, err := svc.Courses(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Go Basics", courses[0].Name)
}
