package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/online-school-api/internal/models"
	"github.com/noah-isme/online-school-api/internal/service"
)

type teacherRepoStub struct {
	items      map[int64]*models.Teacher
	listResult []models.Teacher
	listTotal  int
	affected   int64
	createErr  error
}

func (s *teacherRepoStub) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	return s.listResult, nil
}

func (s *teacherRepoStub) ListPaged(ctx context.Context, filter models.TeacherFilter, limit, offset int) ([]models.Teacher, int, error) {
	return s.listResult, s.listTotal, nil
}

func (s *teacherRepoStub) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if teacher, ok := s.items[id]; ok {
		return teacher, nil
	}
	return nil, sql.ErrNoRows
}

func (s *teacherRepoStub) Create(ctx context.Context, teacher *models.Teacher) error {
	if s.createErr != nil {
		return s.createErr
	}
	teacher.ID = 1
	return nil
}

func (s *teacherRepoStub) UpdateByID(ctx context.Context, id int64, patch models.TeacherPatch) (int64, error) {
	return s.affected, nil
}

func (s *teacherRepoStub) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return s.affected, nil
}

func (s *teacherRepoStub) DeleteAll(ctx context.Context) (int64, error) {
	return s.affected, nil
}

func (s *teacherRepoStub) Count(ctx context.Context) (int, error) {
	return len(s.listResult), nil
}

type courseListerStub struct {
	courses []models.Course
}

func (s *courseListerStub) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	return s.courses, nil
}

func newTeacherTestHandler(repo *teacherRepoStub) *TeacherHandler {
	svc := service.NewTeacherService(repo, &courseListerStub{}, nil, nil)
	return NewTeacherHandler(svc)
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["message"]
}

func TestTeacherHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTeacherTestHandler(&teacherRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/teachers", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Content can not be empty!", messageOf(t, w))
}

func TestTeacherHandlerCreateMissingName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTeacherTestHandler(&teacherRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/teachers", bytes.NewBufferString(`{"email":"a@school.com"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Content can not be empty!", messageOf(t, w))
}

func TestTeacherHandlerCreateReturnsRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTeacherTestHandler(&teacherRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/teachers", bytes.NewBufferString(`{"name":"Alice Carter","email":"alice@school.com"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusOK, w.Code)

	var teacher models.Teacher
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teacher))
	assert.Equal(t, int64(1), teacher.ID)
	assert.Equal(t, "Alice Carter", teacher.Name)
}

func TestTeacherHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTeacherTestHandler(&teacherRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/teachers/42", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cannot find Teacher with id=42.", messageOf(t, w))
}

func TestTeacherHandlerGetInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTeacherTestHandler(&teacherRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/teachers/abc", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Get(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id supplied", messageOf(t, w))
}

func TestTeacherHandlerUpdateSoft200(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("row matched", func(t *testing.T) {
		handler := newTeacherTestHandler(&teacherRepoStub{affected: 1})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req, _ := http.NewRequest(http.MethodPut, "/api/teachers/1", bytes.NewBufferString(`{"name":"Renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "1"}}

		handler.Update(c)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Teacher was updated successfully.", messageOf(t, w))
	})

	t.Run("no row matched", func(t *testing.T) {
		handler := newTeacherTestHandler(&teacherRepoStub{affected: 0})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req, _ := http.NewRequest(http.MethodPut, "/api/teachers/99", bytes.NewBufferString(`{"name":"Renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "99"}}

		handler.Update(c)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Cannot update Teacher with id=99. Maybe Teacher was not found or req.body is empty!", messageOf(t, w))
	})
}

func TestTeacherHandlerDeleteAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTeacherTestHandler(&teacherRepoStub{affected: 3})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/api/teachers", nil)
	c.Request = req

	handler.DeleteAll(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3 Teachers were deleted successfully!", messageOf(t, w))
}

func TestTeacherHandlerListPagedEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTeacherTestHandler(&teacherRepoStub{
		listResult: []models.Teacher{{ID: 1, Name: "Alice Carter"}},
		listTotal:  1,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/teachers/paged?page=1&size=10", nil)
	c.Request = req

	handler.ListPaged(c)
	require.Equal(t, http.StatusOK, w.Code)

	var page map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Contains(t, page, "totalItems")
	assert.Contains(t, page, "totalPages")
	assert.Contains(t, page, "currentPage")
	assert.Contains(t, page, "items")
}

func TestTeacherHandlerCourses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewTeacherService(&teacherRepoStub{}, &courseListerStub{courses: []models.Course{{ID: 1, Name: "Go Basics"}}}, nil, nil)
	handler := NewTeacherHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/teachers/5/courses", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Courses(c)
	require.Equal(t, http.StatusOK, w.Code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Go Basics", courses[0].Name)
}
