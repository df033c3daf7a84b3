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

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	ListPaged(ctx context.Context, filter models.StudentFilter, limit, offset int) ([]models.Student, int, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	UpdateByID(ctx context.Context, id int64, patch models.StudentPatch) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

type studentCourseLister interface {
	CoursesByStudent(ctx context.Context, studentID int64) ([]models.Course, error)
}

// CreateStudentRequest holds the payload for creating a student.
type CreateStudentRequest struct {
	Name             string       `json:"name" validate:"required"`
	Email            string       `json:"email" validate:"required,email"`
	Phone            *string      `json:"phone"`
	BirthDate        *models.Date `json:"birth_date"`
	RegistrationDate *models.Date `json:"registration_date"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	courses   studentCourseLister
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, courses studentCourseLister, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, courses: courses, validator: validate, logger: logger}
}

// List returns students matching the optional name filter.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving students.")
	}
	return students, nil
}

// ListPaged returns a page of students with pagination metadata.
func (s *StudentService) ListPaged(ctx context.Context, filter models.StudentFilter, req models.PageRequest) (models.Page[models.Student], error) {
	req = req.Normalize()
	students, total, err := s.repo.ListPaged(ctx, filter, req.Size, req.Offset())
	if err != nil {
		return models.Page[models.Student]{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving students.")
	}
	return models.NewPage(students, total, req), nil
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Cannot find Student with id=%d.", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error retrieving Student with id=%d", id))
	}
	return student, nil
}

// Create registers a new student. A duplicate email surfaces as a unique
// violation.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!")
	}
	student := &models.Student{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		BirthDate:        req.BirthDate,
		RegistrationDate: req.RegistrationDate,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		if appErrors.IsUniqueViolation(err) {
			return nil, appErrors.Unique(err)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while creating the Student.")
	}
	s.logger.Info("student created", zap.Int64("id", student.ID))
	return student, nil
}

// Update applies a partial update and reports the matched-row count.
func (s *StudentService) Update(ctx context.Context, id int64, patch models.StudentPatch) (int64, error) {
	affected, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		if appErrors.IsUniqueViolation(err) {
			return 0, appErrors.Unique(err)
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error updating Student with id=%d", id))
	}
	return affected, nil
}

// Delete removes one student and reports the affected count.
func (s *StudentService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Could not delete Student with id=%d", id))
	}
	return affected, nil
}

// DeleteAll removes every student and reports the count.
func (s *StudentService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while removing all students.")
	}
	return affected, nil
}

// Courses returns the courses a student is enrolled in.
func (s *StudentService) Courses(ctx context.Context, studentID int64) ([]models.Course, error) {
	courses, err := s.courses.CoursesByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving courses.")
	}
	return courses, nil
}
