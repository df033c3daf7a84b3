package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/online-school-api/internal/models"
	appErrors "github.com/noah-isme/online-school-api/pkg/errors"
)

type rowCounter interface {
	Count(ctx context.Context) (int, error)
}

// StatsService aggregates row counts across the five entity tables for the
// dashboard.
type StatsService struct {
	students    rowCounter
	teachers    rowCounter
	courses     rowCounter
	lessons     rowCounter
	enrollments rowCounter
	logger      *zap.Logger
}

// NewStatsService constructs the stats service.
func NewStatsService(students, teachers, courses, lessons, enrollments rowCounter, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{
		students:    students,
		teachers:    teachers,
		courses:     courses,
		lessons:     lessons,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Stats returns the current entity counts.
func (s *StatsService) Stats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	counts := []struct {
		counter rowCounter
		target  *int
	}{
		{s.students, &stats.Students},
		{s.teachers, &stats.Teachers},
		{s.courses, &stats.Courses},
		{s.lessons, &stats.Lessons},
		{s.enrollments, &stats.Enrollments},
	}
	for _, c := range counts {
		total, err := c.counter.Count(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Some error occurred while retrieving stats.")
		}
		*c.target = total
	}
	return stats, nil
}
