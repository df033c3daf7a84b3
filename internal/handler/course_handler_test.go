package handler

import (
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

type courseRepoStub struct {
	rows        []models.CourseRelations
	listTotal   int
	teacherName *models.CourseTeacherName
	teacher     *models.Teacher
	lookupErr   error
	affected    int64
}

func (s *courseRepoStub) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseRelations, error) {
	return s.rows, nil
}

func (s *courseRepoStub) ListPaged(ctx context.Context, filter models.CourseFilter, limit, offset int) ([]models.CourseRelations, int, error) {
	return s.rows, s.listTotal, nil
}

func (s *courseRepoStub) FindByID(ctx context.Context, id int64) (*models.CourseRelations, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *courseRepoStub) TeacherName(ctx context.Context, courseID int64) (*models.CourseTeacherName, error) {
	return s.teacherName, s.lookupErr
}

func (s *courseRepoStub) TeacherNameNamed(ctx context.Context, courseID int64) (*models.CourseTeacherName, error) {
	return s.teacherName, s.lookupErr
}

func (s *courseRepoStub) Teacher(ctx context.Context, courseID int64) (*models.Teacher, error) {
	return s.teacher, s.lookupErr
}

func (s *courseRepoStub) TeacherDirect(ctx context.Context, courseID int64) (*models.Teacher, error) {
	return s.teacher, s.lookupErr
}

func (s *courseRepoStub) Create(ctx context.Context, course *models.Course) error {
	course.ID = 1
	return nil
}

func (s *courseRepoStub) UpdateByID(ctx context.Context, id int64, patch models.CoursePatch) (int64, error) {
	return s.affected, nil
}

func (s *courseRepoStub) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return s.affected, nil
}

func (s *courseRepoStub) DeleteAll(ctx context.Context) (int64, error) {
	return s.affected, nil
}

func (s *courseRepoStub) Count(ctx context.Context) (int, error) {
	return len(s.rows), nil
}

type lessonListerStub struct {
	lessons []models.Lesson
}

func (s *lessonListerStub) ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	return s.lessons, nil
}

type studentListerStub struct {
	students []models.Student
}

func (s *studentListerStub) StudentsByCourse(ctx context.Context, courseID int64) ([]models.Student, error) {
	return s.students, nil
}

func newCourseTestHandler(repo *courseRepoStub) *CourseHandler {
	svc := service.NewCourseService(repo, &lessonListerStub{}, &studentListerStub{}, nil, nil)
	return NewCourseHandler(svc)
}

func TestCourseHandlerListIncludesTeacherFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	name := "Alice Carter"
	spec := "Programming"
	handler := newCourseTestHandler(&courseRepoStub{rows: []models.CourseRelations{
		{Course: models.Course{ID: 1, Name: "Go Basics"}, TeacherName: &name, TeacherSpecialization: &spec},
		{Course: models.Course{ID: 2, Name: "Orphaned"}},
	}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/courses", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "Alice Carter", views[0]["teacher_name"])
	assert.Equal(t, "Programming", views[0]["specialization"])
	assert.Nil(t, views[1]["teacher_name"])
	assert.Nil(t, views[1]["specialization"])
}

func TestCourseHandlerTeacherLookupsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCourseTestHandler(&courseRepoStub{lookupErr: sql.ErrNoRows})

	lookups := map[string]gin.HandlerFunc{
		"teachername":       handler.TeacherName,
		"teachername-named": handler.TeacherNameNamed,
		"teacher":           handler.Teacher,
		"teacher-sub":       handler.TeacherSub,
	}
	for route, fn := range lookups {
		t.Run(route, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req, _ := http.NewRequest(http.MethodGet, "/api/courses/3/"+route, nil)
			c.Request = req
			c.Params = gin.Params{{Key: "id", Value: "3"}}

			fn(c)
			require.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Cannot find teacher for Course with id=3.", messageOf(t, w))
		})
	}
}

func TestCourseHandlerTeacherName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCourseTestHandler(&courseRepoStub{
		teacherName: &models.CourseTeacherName{CourseID: 1, TeacherName: "Alice Carter"},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/courses/1/teachername", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.TeacherName(c)
	require.Equal(t, http.StatusOK, w.Code)

	var result models.CourseTeacherName
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Alice Carter", result.TeacherName)
}

func TestCourseHandlerLessons(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewCourseService(&courseRepoStub{}, &lessonListerStub{lessons: []models.Lesson{{ID: 1, Title: "Introduction"}}}, &studentListerStub{}, nil, nil)
	handler := NewCourseHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/courses/1/lessons", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Lessons(c)
	require.Equal(t, http.StatusOK, w.Code)

	var lessons []models.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lessons))
	require.Len(t, lessons, 1)
	assert.Equal(t, "Introduction", lessons[0].Title)
}
