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

type enrollmentRepository interface {
	List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentRelations, error)
	ListPaged(ctx context.Context, filter models.EnrollmentFilter, limit, offset int) ([]models.EnrollmentRelations, int, error)
	FindByID(ctx context.Context, id int64) (*models.EnrollmentRelations, error)
	FindByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	UpdateByID(ctx context.Context, id int64, patch models.EnrollmentPatch) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

// CreateEnrollmentRequest holds the payload for enrolling a student.
type CreateEnrollmentRequest struct {
	StudentID      int64        `json:"student_id" validate:"required"`
	CourseID       int64        `json:"course_id" validate:"required"`
	EnrollmentDate *models.Date `json:"enrollment_date"`
	Status         *string      `json:"status"`
	Grade          *float64     `json:"grade"`
}

// EnrollmentService handles the student/course join entity.
type EnrollmentService struct {
	repo      enrollmentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, validator: validate, logger: logger}
}

// List returns projected enrollment views, newest first.
func (s *EnrollmentService) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentView, error) {
	enrollments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving enrollments.")
	}
	return ProjectEnrollments(enrollments), nil
}

// ListPaged returns a page of projected enrollment views.
func (s *EnrollmentService) ListPaged(ctx context.Context, filter models.EnrollmentFilter, req models.PageRequest) (models.Page[models.EnrollmentView], error) {
	req = req.Normalize()
	enrollments, total, err := s.repo.ListPaged(ctx, filter, req.Size, req.Offset())
	if err != nil {
		return models.Page[models.EnrollmentView]{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving enrollments.")
	}
	return models.NewPage(ProjectEnrollments(enrollments), total, req), nil
}

// Get returns a single projected enrollment view.
func (s *EnrollmentService) Get(ctx context.Context, id int64) (*models.EnrollmentView, error) {
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Cannot find Enrollment with id=%d.", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error retrieving Enrollment with id=%d", id))
	}
	view := ProjectEnrollment(*enrollment)
	return &view, nil
}

// Link returns the enrollment rows connecting a student and a course. The
// unique index guarantees at most one.
func (s *EnrollmentService) Link(ctx context.Context, studentID, courseID int64) ([]models.Enrollment, error) {
	enrollments, err := s.repo.FindByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving enrollments.")
	}
	return enrollments, nil
}

// Create enrolls a student in a course. Defaults: status "active",
// enrollment date today. Enrolling the same pair twice trips the unique
// index; the duplicate surfaces as a unique-violation error with the store
// message so the caller can render "already enrolled".
func (s *EnrollmentService) Create(ctx context.Context, req CreateEnrollmentRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Student ID and Course ID are required!")
	}
	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    models.StatusActive,
		Grade:     req.Grade,
	}
	if req.EnrollmentDate != nil {
		enrollment.EnrollmentDate = *req.EnrollmentDate
	} else {
		enrollment.EnrollmentDate = models.Today()
	}
	if req.Status != nil && *req.Status != "" {
		enrollment.Status = *req.Status
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		if appErrors.IsUniqueViolation(err) {
			return nil, appErrors.Unique(err)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while creating the Enrollment.")
	}
	s.logger.Info("enrollment created",
		zap.Int64("id", enrollment.ID),
		zap.Int64("student_id", enrollment.StudentID),
		zap.Int64("course_id", enrollment.CourseID))
	return enrollment, nil
}

// Update applies a partial update and reports the matched-row count.
func (s *EnrollmentService) Update(ctx context.Context, id int64, patch models.EnrollmentPatch) (int64, error) {
	affected, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		if appErrors.IsUniqueViolation(err) {
			return 0, appErrors.Unique(err)
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error updating Enrollment with id=%d", id))
	}
	return affected, nil
}

// Delete removes one enrollment and reports the affected count.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Could not delete Enrollment with id=%d", id))
	}
	return affected, nil
}

// DeleteAll removes every enrollment and reports the count.
func (s *EnrollmentService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while removing all enrollments.")
	}
	return affected, nil
}
