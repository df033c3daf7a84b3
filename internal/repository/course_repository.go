package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/online-school-api/internal/models"
)

const courseColumns = "c.id, c.name, c.description, c.teacher_id, c.duration_hours, c.price, c.start_date, c.end_date"

const courseBareColumns = "id, name, description, teacher_id, duration_hours, price, start_date, end_date"

// courseJoin eager-loads only the teacher name and specialization. The full
// teacher row is never joined on the course read path.
const courseJoin = ", t.name AS teacher_name, t.specialization AS teacher_specialization" +
	" FROM courses c LEFT JOIN teachers t ON t.id = c.teacher_id"

// CourseRepository manages persistence for course records.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses with their eager-loaded teacher attributes,
// optionally filtered by a case-insensitive name substring.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseRelations, error) {
	query := "SELECT " + courseColumns + courseJoin
	var args []interface{}
	if filter.Name != "" {
		query += " WHERE c.name ILIKE $1"
		args = append(args, "%"+filter.Name+"%")
	}
	query += " ORDER BY c.id ASC"

	courses := []models.CourseRelations{}
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ListPaged returns one window of courses plus the total row count.
func (r *CourseRepository) ListPaged(ctx context.Context, filter models.CourseFilter, limit, offset int) ([]models.CourseRelations, int, error) {
	where := ""
	var args []interface{}
	if filter.Name != "" {
		where = " WHERE c.name ILIKE $1"
		args = append(args, "%"+filter.Name+"%")
	}

	query := fmt.Sprintf("SELECT %s%s%s ORDER BY c.id ASC LIMIT %d OFFSET %d", courseColumns, courseJoin, where, limit, offset)
	courses := []models.CourseRelations{}
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list courses page: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM courses c"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}
	return courses, total, nil
}

// FindByID fetches a course with its teacher attributes. Returns
// sql.ErrNoRows when absent.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.CourseRelations, error) {
	query := "SELECT " + courseColumns + courseJoin + " WHERE c.id = $1"
	var course models.CourseRelations
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// ListByTeacher returns the courses owned by one teacher.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE teacher_id = $1 ORDER BY id ASC", courseBareColumns)
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query, teacherID); err != nil {
		return nil, fmt.Errorf("list courses by teacher: %w", err)
	}
	return courses, nil
}

// TeacherName returns the course's teacher name via a positional-parameter
// join.
func (r *CourseRepository) TeacherName(ctx context.Context, courseID int64) (*models.CourseTeacherName, error) {
	const query = `SELECT c.id AS course_id, t.name AS teacher_name
        FROM courses c JOIN teachers t ON t.id = c.teacher_id
        WHERE c.id = $1`
	var result models.CourseTeacherName
	if err := r.db.GetContext(ctx, &result, query, courseID); err != nil {
		return nil, err
	}
	return &result, nil
}

// TeacherNameNamed returns the same lookup via a named-parameter join.
func (r *CourseRepository) TeacherNameNamed(ctx context.Context, courseID int64) (*models.CourseTeacherName, error) {
	const query = `SELECT c.id AS course_id, t.name AS teacher_name
        FROM courses c JOIN teachers t ON t.id = c.teacher_id
        WHERE c.id = :course_id`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{"course_id": courseID})
	if err != nil {
		return nil, fmt.Errorf("course teacher name: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}
	var result models.CourseTeacherName
	if err := rows.StructScan(&result); err != nil {
		return nil, fmt.Errorf("scan teacher name: %w", err)
	}
	return &result, nil
}

// Teacher returns the full teacher row for a course via a named-parameter
// join.
func (r *CourseRepository) Teacher(ctx context.Context, courseID int64) (*models.Teacher, error) {
	const query = `SELECT t.id, t.name, t.email, t.specialization, t.phone, t.hire_date
        FROM teachers t JOIN courses c ON c.teacher_id = t.id
        WHERE c.id = :course_id`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{"course_id": courseID})
	if err != nil {
		return nil, fmt.Errorf("course teacher: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}
	var teacher models.Teacher
	if err := rows.StructScan(&teacher); err != nil {
		return nil, fmt.Errorf("scan teacher: %w", err)
	}
	return &teacher, nil
}

// TeacherDirect backs the legacy /teacher-sub route. The Node implementation
// interpolated the id into the SQL text; the query here binds it instead
// while keeping the route and response contract unchanged.
func (r *CourseRepository) TeacherDirect(ctx context.Context, courseID int64) (*models.Teacher, error) {
	const query = `SELECT t.id, t.name, t.email, t.specialization, t.phone, t.hire_date
        FROM teachers t JOIN courses c ON c.teacher_id = t.id
        WHERE c.id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, courseID); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create inserts a course and fills in the generated ID.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const query = `INSERT INTO courses (name, description, teacher_id, duration_hours, price, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, name, description, teacher_id, duration_hours, price, start_date, end_date`
	if err := r.db.GetContext(ctx, course, query,
		course.Name, course.Description, course.TeacherID, course.DurationHours,
		course.Price, course.StartDate, course.EndDate); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// UpdateByID applies the non-nil patch fields and reports how many rows
// matched.
func (r *CourseRepository) UpdateByID(ctx context.Context, id int64, patch models.CoursePatch) (int64, error) {
	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.TeacherID != nil {
		add("teacher_id", *patch.TeacherID)
	}
	if patch.DurationHours != nil {
		add("duration_hours", *patch.DurationHours)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		add("end_date", *patch.EndDate)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE courses SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update course: %w", err)
	}
	return res.RowsAffected()
}

// DeleteByID removes one course and reports the affected count.
func (r *CourseRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete course: %w", err)
	}
	return res.RowsAffected()
}

// DeleteAll removes every course and reports the affected count.
func (r *CourseRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM courses")
	if err != nil {
		return 0, fmt.Errorf("delete all courses: %w", err)
	}
	return res.RowsAffected()
}

// Count returns the number of course rows.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM courses"); err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return total, nil
}
