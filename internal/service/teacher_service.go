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

type teacherRepository interface {
	List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error)
	ListPaged(ctx context.Context, filter models.TeacherFilter, limit, offset int) ([]models.Teacher, int, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	UpdateByID(ctx context.Context, id int64, patch models.TeacherPatch) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

type teacherCourseLister interface {
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error)
}

// CreateTeacherRequest holds the payload for creating a teacher.
type CreateTeacherRequest struct {
	Name           string       `json:"name" validate:"required"`
	Email          string       `json:"email" validate:"required,email"`
	Specialization *string      `json:"specialization"`
	Phone          *string      `json:"phone"`
	HireDate       *models.Date `json:"hire_date"`
}

// TeacherService handles teacher use-cases.
type TeacherService struct {
	repo      teacherRepository
	courses   teacherCourseLister
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(repo teacherRepository, courses teacherCourseLister, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, courses: courses, validator: validate, logger: logger}
}

// List returns teachers matching the optional name filter.
func (s *TeacherService) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving teachers.")
	}
	return teachers, nil
}

// ListPaged returns a page of teachers with pagination metadata.
func (s *TeacherService) ListPaged(ctx context.Context, filter models.TeacherFilter, req models.PageRequest) (models.Page[models.Teacher], error) {
	req = req.Normalize()
	teachers, total, err := s.repo.ListPaged(ctx, filter, req.Size, req.Offset())
	if err != nil {
		return models.Page[models.Teacher]{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving teachers.")
	}
	return models.NewPage(teachers, total, req), nil
}

// Get returns a single teacher.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Cannot find Teacher with id=%d.", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error retrieving Teacher with id=%d", id))
	}
	return teacher, nil
}

// Create registers a new teacher. A duplicate email surfaces as a unique
// violation, not a generic failure.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!")
	}
	teacher := &models.Teacher{
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		HireDate:       req.HireDate,
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		if appErrors.IsUniqueViolation(err) {
			return nil, appErrors.Unique(err)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while creating the Teacher.")
	}
	s.logger.Info("teacher created", zap.Int64("id", teacher.ID))
	return teacher, nil
}

// Update applies a partial update and reports the matched-row count. Zero is
// not an error: the id may not exist, or the patch may be empty.
func (s *TeacherService) Update(ctx context.Context, id int64, patch models.TeacherPatch) (int64, error) {
	affected, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		if appErrors.IsUniqueViolation(err) {
			return 0, appErrors.Unique(err)
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error updating Teacher with id=%d", id))
	}
	return affected, nil
}

// Delete removes one teacher and reports the affected count.
func (s *TeacherService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Could not delete Teacher with id=%d", id))
	}
	return affected, nil
}

// DeleteAll removes every teacher and reports the count.
func (s *TeacherService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while removing all teachers.")
	}
	return affected, nil
}

// Courses returns the courses owned by a teacher.
func (s *TeacherService) Courses(ctx context.Context, teacherID int64) ([]models.Course, error) {
	courses, err := s.courses.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving courses.")
	}
	return courses, nil
}
