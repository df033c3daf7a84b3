package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/online-school-api/internal/models"
)

const lessonColumns = "id, course_id, title, content, lesson_order, duration_minutes, lesson_date"

// LessonRepository manages persistence for lesson records.
type LessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository constructs a LessonRepository.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// List returns lessons, optionally filtered by course, in primary-key order.
func (r *LessonRepository) List(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	query := fmt.Sprintf("SELECT %s FROM lessons", lessonColumns)
	var args []interface{}
	if filter.CourseID != nil {
		query += " WHERE course_id = $1"
		args = append(args, *filter.CourseID)
	}
	query += " ORDER BY id ASC"

	lessons := []models.Lesson{}
	if err := r.db.SelectContext(ctx, &lessons, query, args...); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

// ListPaged returns one window of lessons plus the total row count.
func (r *LessonRepository) ListPaged(ctx context.Context, filter models.LessonFilter, limit, offset int) ([]models.Lesson, int, error) {
	where := ""
	var args []interface{}
	if filter.CourseID != nil {
		where = " WHERE course_id = $1"
		args = append(args, *filter.CourseID)
	}

	query := fmt.Sprintf("SELECT %s FROM lessons%s ORDER BY id ASC LIMIT %d OFFSET %d", lessonColumns, where, limit, offset)
	lessons := []models.Lesson{}
	if err := r.db.SelectContext(ctx, &lessons, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list lessons page: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM lessons"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count lessons: %w", err)
	}
	return lessons, total, nil
}

// ListByCourse returns a course's lessons in teaching order.
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	query := fmt.Sprintf("SELECT %s FROM lessons WHERE course_id = $1 ORDER BY lesson_order ASC", lessonColumns)
	lessons := []models.Lesson{}
	if err := r.db.SelectContext(ctx, &lessons, query, courseID); err != nil {
		return nil, fmt.Errorf("list lessons by course: %w", err)
	}
	return lessons, nil
}

// FindByID fetches a lesson by ID. Returns sql.ErrNoRows when absent.
func (r *LessonRepository) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	query := fmt.Sprintf("SELECT %s FROM lessons WHERE id = $1", lessonColumns)
	var lesson models.Lesson
	if err := r.db.GetContext(ctx, &lesson, query, id); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// Create inserts a lesson and fills in the generated ID.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	query := fmt.Sprintf(`INSERT INTO lessons (course_id, title, content, lesson_order, duration_minutes, lesson_date)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING %s`, lessonColumns)
	if err := r.db.GetContext(ctx, lesson, query,
		lesson.CourseID, lesson.Title, lesson.Content, lesson.LessonOrder,
		lesson.DurationMinutes, lesson.LessonDate); err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}
	return nil
}

// UpdateByID applies the non-nil patch fields and reports how many rows
// matched.
func (r *LessonRepository) UpdateByID(ctx context.Context, id int64, patch models.LessonPatch) (int64, error) {
	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.CourseID != nil {
		add("course_id", *patch.CourseID)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.LessonOrder != nil {
		add("lesson_order", *patch.LessonOrder)
	}
	if patch.DurationMinutes != nil {
		add("duration_minutes", *patch.DurationMinutes)
	}
	if patch.LessonDate != nil {
		add("lesson_date", *patch.LessonDate)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE lessons SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update lesson: %w", err)
	}
	return res.RowsAffected()
}

// DeleteByID removes one lesson and reports the affected count.
func (r *LessonRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM lessons WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete lesson: %w", err)
	}
	return res.RowsAffected()
}

// DeleteAll removes every lesson and reports the affected count.
func (r *LessonRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM lessons")
	if err != nil {
		return 0, fmt.Errorf("delete all lessons: %w", err)
	}
	return res.RowsAffected()
}

// Count returns the number of lesson rows.
func (r *LessonRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM lessons"); err != nil {
		return 0, fmt.Errorf("count lessons: %w", err)
	}
	return total, nil
}
