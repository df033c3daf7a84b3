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

type studentRepoStub struct {
	items []models.Student
}

func (s *studentRepoStub) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	return s.items, nil
}

func (s *studentRepoStub) ListPaged(ctx context.Context, filter models.StudentFilter, limit, offset int) ([]models.Student, int, error) {
	return s.items, len(s.items), nil
}

func (s *studentRepoStub) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	return nil, sql.ErrNoRows
}

func (s *studentRepoStub) Create(ctx context.Context, student *models.Student) error {
	student.ID = 1
	return nil
}

func (s *studentRepoStub) UpdateByID(ctx context.Context, id int64, patch models.StudentPatch) (int64, error) {
	return 0, nil
}

func (s *studentRepoStub) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return 0, nil
}

func (s *studentRepoStub) DeleteAll(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *studentRepoStub) Count(ctx context.Context) (int, error) {
	return len(s.items), nil
}

type studentCourseListerStub struct{}

func (studentCourseListerStub) CoursesByStudent(ctx context.Context, studentID int64) ([]models.Course, error) {
	return nil, nil
}

type lessonRepoStub struct {
	items []models.Lesson
}

func (s *lessonRepoStub) List(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	return s.items, nil
}

func (s *lessonRepoStub) ListPaged(ctx context.Context, filter models.LessonFilter, limit, offset int) ([]models.Lesson, int, error) {
	return s.items, len(s.items), nil
}

func (s *lessonRepoStub) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	return nil, sql.ErrNoRows
}

func (s *lessonRepoStub) Create(ctx context.Context, lesson *models.Lesson) error {
	lesson.ID = 1
	return nil
}

func (s *lessonRepoStub) UpdateByID(ctx context.Context, id int64, patch models.LessonPatch) (int64, error) {
	return 0, nil
}

func (s *lessonRepoStub) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return 0, nil
}

func (s *lessonRepoStub) DeleteAll(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *lessonRepoStub) Count(ctx context.Context) (int, error) {
	return len(s.items), nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	teacherRepo := &teacherRepoStub{listResult: []models.Teacher{{ID: 1, Name: "Alice Carter"}}, listTotal: 1}
	studentRepo := &studentRepoStub{items: []models.Student{{ID: 1, Name: "Sam Hill"}}}
	courseRepo := &courseRepoStub{}
	lessonRepo := &lessonRepoStub{}
	enrollmentRepo := &enrollmentRepoStub{}

	routes := Routes{
		Teachers:    NewTeacherHandler(service.NewTeacherService(teacherRepo, &courseListerStub{}, nil, nil)),
		Students:    NewStudentHandler(service.NewStudentService(studentRepo, studentCourseListerStub{}, nil, nil)),
		Courses:     NewCourseHandler(service.NewCourseService(courseRepo, &lessonListerStub{}, &studentListerStub{}, nil, nil)),
		Lessons:     NewLessonHandler(service.NewLessonService(lessonRepo, nil, nil)),
		Enrollments: NewEnrollmentHandler(service.NewEnrollmentService(enrollmentRepo, nil, nil)),
		Stats:       NewStatsHandler(service.NewStatsService(studentRepo, teacherRepo, courseRepo, lessonRepo, enrollmentRepo, nil)),
	}

	r := gin.New()
	routes.Register(r.Group("/api"))
	return r
}

func TestRouterPagedAndIDRoutesCoexist(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/teachers/paged?page=1&size=10", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var page map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Contains(t, page, "totalItems")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/teachers/1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cannot find Teacher with id=1.", messageOf(t, w))
}

func TestRouterEnrollmentLinkBeforeID(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/enrollments/link?student_id=1&course_id=2", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var links []models.Enrollment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
	assert.Empty(t, links)
}

func TestRouterStats(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/stats", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Students)
	assert.Equal(t, 1, stats.Teachers)
}

func TestRouterCourseSubRoutes(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{
		"/api/courses/1/teachername",
		"/api/courses/1/teachername-named",
		"/api/courses/1/teacher",
		"/api/courses/1/teacher-sub",
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		assert.NotEqual(t, http.StatusNotFound, w.Code, path)
	}
}
