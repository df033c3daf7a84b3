package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/online-school-api/internal/models"
	appErrors "github.com/noah-isme/online-school-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.CourseRelations, error)
	ListPaged(ctx context.Context, filter models.CourseFilter, limit, offset int) ([]models.CourseRelations, int, error)
	FindByID(ctx context.Context, id int64) (*models.CourseRelations, error)
	TeacherName(ctx context.Context, courseID int64) (*models.CourseTeacherName, error)
	TeacherNameNamed(ctx context.Context, courseID int64) (*models.CourseTeacherName, error)
	Teacher(ctx context.Context, courseID int64) (*models.Teacher, error)
	TeacherDirect(ctx context.Context, courseID int64) (*models.Teacher, error)
	Create(ctx context.Context, course *models.Course) error
	UpdateByID(ctx context.Context, id int64, patch models.CoursePatch) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

type courseLessonLister interface {
	ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error)
}

type courseStudentLister interface {
	StudentsByCourse(ctx context.Context, courseID int64) ([]models.Student, error)
}

// CreateCourseRequest holds the payload for creating a course.
type CreateCourseRequest struct {
	Name          string       `json:"name" validate:"required"`
	Description   *string      `json:"description"`
	TeacherID     *int64       `json:"teacher_id"`
	DurationHours *int         `json:"duration_hours"`
	Price         *float64     `json:"price"`
	StartDate     *models.Date `json:"start_date"`
	EndDate       *models.Date `json:"end_date"`
}

// CourseService handles course use-cases, including the teacher-lookup
// sub-routes.
type CourseService struct {
	repo      courseRepository
	lessons   courseLessonLister
	students  courseStudentLister
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, lessons courseLessonLister, students courseStudentLister, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, lessons: lessons, students: students, validator: validate, logger: logger}
}

// List returns projected course views matching the optional name filter.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseView, error) {
	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving courses.")
	}
	return ProjectCourses(courses), nil
}

// ListPaged returns a page of projected course views.
func (s *CourseService) ListPaged(ctx context.Context, filter models.CourseFilter, req models.PageRequest) (models.Page[models.CourseView], error) {
	req = req.Normalize()
	courses, total, err := s.repo.ListPaged(ctx, filter, req.Size, req.Offset())
	if err != nil {
		return models.Page[models.CourseView]{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving courses.")
	}
	return models.NewPage(ProjectCourses(courses), total, req), nil
}

// Get returns a single projected course view.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.CourseView, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Cannot find Course with id=%d.", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error retrieving Course with id=%d", id))
	}
	view := ProjectCourse(*course)
	return &view, nil
}

// Create registers a new course.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!")
	}
	course := &models.Course{
		Name:          req.Name,
		Description:   req.Description,
		TeacherID:     req.TeacherID,
		DurationHours: req.DurationHours,
		Price:         req.Price,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while creating the Course.")
	}
	s.logger.Info("course created", zap.Int64("id", course.ID))
	return course, nil
}

// Update applies a partial update and reports the matched-row count.
func (s *CourseService) Update(ctx context.Context, id int64, patch models.CoursePatch) (int64, error) {
	affected, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error updating Course with id=%d", id))
	}
	return affected, nil
}

// Delete removes one course and reports the affected count.
func (s *CourseService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Could not delete Course with id=%d", id))
	}
	return affected, nil
}

// DeleteAll removes every course and reports the count.
func (s *CourseService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while removing all courses.")
	}
	return affected, nil
}

// TeacherName resolves a course's teacher name (positional SQL variant).
func (s *CourseService) TeacherName(ctx context.Context, courseID int64) (*models.CourseTeacherName, error) {
	result, err := s.repo.TeacherName(ctx, courseID)
	return result, s.teacherLookupErr(courseID, err)
}

// TeacherNameNamed resolves a course's teacher name (named SQL variant).
func (s *CourseService) TeacherNameNamed(ctx context.Context, courseID int64) (*models.CourseTeacherName, error) {
	result, err := s.repo.TeacherNameNamed(ctx, courseID)
	return result, s.teacherLookupErr(courseID, err)
}

// Teacher resolves the full teacher row for a course (named SQL variant).
func (s *CourseService) Teacher(ctx context.Context, courseID int64) (*models.Teacher, error) {
	teacher, err := s.repo.Teacher(ctx, courseID)
	return teacher, s.teacherLookupErr(courseID, err)
}

// TeacherDirect resolves the full teacher row through the legacy
// string-substitution route, now parameter-bound.
func (s *CourseService) TeacherDirect(ctx context.Context, courseID int64) (*models.Teacher, error) {
	teacher, err := s.repo.TeacherDirect(ctx, courseID)
	return teacher, s.teacherLookupErr(courseID, err)
}

func (s *CourseService) teacherLookupErr(courseID int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Cannot find teacher for Course with id=%d.", courseID))
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error retrieving teacher for Course with id=%d", courseID))
}

// Lessons returns a course's lessons in teaching order.
func (s *CourseService) Lessons(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	lessons, err := s.lessons.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving lessons.")
	}
	return lessons, nil
}

// Students returns the students enrolled in a course.
func (s *CourseService) Students(ctx context.Context, courseID int64) ([]models.Student, error) {
	students, err := s.students.StudentsByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving students.")
	}
	return students, nil
}
