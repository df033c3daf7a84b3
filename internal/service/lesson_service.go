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

type lessonRepository interface {
	List(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error)
	ListPaged(ctx context.Context, filter models.LessonFilter, limit, offset int) ([]models.Lesson, int, error)
	FindByID(ctx context.Context, id int64) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	UpdateByID(ctx context.Context, id int64, patch models.LessonPatch) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

// CreateLessonRequest holds the payload for creating a lesson. course_id is
// required: a lesson cannot exist outside a course.
type CreateLessonRequest struct {
	CourseID        int64        `json:"course_id" validate:"required"`
	Title           string       `json:"title" validate:"required"`
	Content         *string      `json:"content"`
	LessonOrder     *int         `json:"lesson_order"`
	DurationMinutes *int         `json:"duration_minutes"`
	LessonDate      *models.Date `json:"lesson_date"`
}

// LessonService handles lesson use-cases.
type LessonService struct {
	repo      lessonRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLessonService constructs the lesson service.
func NewLessonService(repo lessonRepository, validate *validator.Validate, logger *zap.Logger) *LessonService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LessonService{repo: repo, validator: validate, logger: logger}
}

// List returns lessons, optionally filtered by course.
func (s *LessonService) List(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	lessons, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving lessons.")
	}
	return lessons, nil
}

// ListPaged returns a page of lessons with pagination metadata.
func (s *LessonService) ListPaged(ctx context.Context, filter models.LessonFilter, req models.PageRequest) (models.Page[models.Lesson], error) {
	req = req.Normalize()
	lessons, total, err := s.repo.ListPaged(ctx, filter, req.Size, req.Offset())
	if err != nil {
		return models.Page[models.Lesson]{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving lessons.")
	}
	return models.NewPage(lessons, total, req), nil
}

// Get returns a single lesson.
func (s *LessonService) Get(ctx context.Context, id int64) (*models.Lesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Cannot find Lesson with id=%d.", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error retrieving Lesson with id=%d", id))
	}
	return lesson, nil
}

// Create registers a new lesson. An unknown course_id fails on the foreign
// key and surfaces as a store error.
func (s *LessonService) Create(ctx context.Context, req CreateLessonRequest) (*models.Lesson, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!")
	}
	lesson := &models.Lesson{
		CourseID:        req.CourseID,
		Title:           req.Title,
		Content:         req.Content,
		LessonOrder:     req.LessonOrder,
		DurationMinutes: req.DurationMinutes,
		LessonDate:      req.LessonDate,
	}
	if err := s.repo.Create(ctx, lesson); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while creating the Lesson.")
	}
	s.logger.Info("lesson created", zap.Int64("id", lesson.ID), zap.Int64("course_id", lesson.CourseID))
	return lesson, nil
}

// Update applies a partial update and reports the matched-row count.
func (s *LessonService) Update(ctx context.Context, id int64, patch models.LessonPatch) (int64, error) {
	affected, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Error updating Lesson with id=%d", id))
	}
	return affected, nil
}

// Delete removes one lesson and reports the affected count.
func (s *LessonService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("Could not delete Lesson with id=%d", id))
	}
	return affected, nil
}

// DeleteAll removes every lesson and reports the count.
func (s *LessonService) DeleteAll(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while removing all lessons.")
	}
	return affected, nil
}
