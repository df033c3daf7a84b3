package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter struct {
	total int
	err   error
}

func (c fixedCounter) Count(ctx context.Context) (int, error) {
	return c.total, c.err
}

func TestStatsServiceAggregatesCounts(t *testing.T) {
	svc := NewStatsService(
		fixedCounter{total: 10},
		fixedCounter{total: 3},
		fixedCounter{total: 5},
		fixedCounter{total: 20},
		fixedCounter{total: 15},
		nil,
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Students)
	assert.Equal(t, 3, stats.Teachers)
	assert.Equal(t, 5, stats.Courses)
	assert.Equal(t, 20, stats.Lessons)
	assert.Equal(t, 15, stats.Enrollments)
}

func TestStatsServicePropagatesError(t *testing.T) {
	svc := NewStatsService(
		fixedCounter{total: 10},
		fixedCounter{err: errors.New("connection refused")},
		fixedCounter{},
		fixedCounter{},
		fixedCounter{},
		nil,
	)

	_, err := svc.Stats(context.Background())
	require.Error(t, err)
}
