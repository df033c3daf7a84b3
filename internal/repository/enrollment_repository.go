package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/online-school-api/internal/models"
)

const enrollmentColumns = "e.id, e.student_id, e.course_id, e.enrollment_date, e.status, e.grade"

// enrollmentJoin eager-loads the student name/email and course name/price.
// LEFT JOINs on purpose: an enrollment outliving its student or course still
// lists, and the projection substitutes placeholders.
const enrollmentJoin = ", s.name AS student_name, s.email AS student_email" +
	", c.name AS course_name, c.price AS course_price" +
	" FROM enrollments e" +
	" LEFT JOIN students s ON s.id = e.student_id" +
	" LEFT JOIN courses c ON c.id = e.course_id"

// Newest enrollments first; id breaks ties so pages stay stable.
const enrollmentOrder = " ORDER BY e.enrollment_date DESC, e.id DESC"

// EnrollmentRepository manages the student/course join entity.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func enrollmentWhere(filter models.EnrollmentFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		conditions = append(conditions, fmt.Sprintf("e.student_id = $%d", len(args)))
	}
	if filter.CourseID != nil {
		args = append(args, *filter.CourseID)
		conditions = append(conditions, fmt.Sprintf("e.course_id = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List returns enrollments with their eager-loaded relations, newest first.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentRelations, error) {
	where, args := enrollmentWhere(filter)
	query := "SELECT " + enrollmentColumns + enrollmentJoin + where + enrollmentOrder

	enrollments := []models.EnrollmentRelations{}
	if err := r.db.SelectContext(ctx, &enrollments, query, args...); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// ListPaged returns one window of enrollments plus the total row count.
func (r *EnrollmentRepository) ListPaged(ctx context.Context, filter models.EnrollmentFilter, limit, offset int) ([]models.EnrollmentRelations, int, error) {
	where, args := enrollmentWhere(filter)
	query := fmt.Sprintf("SELECT %s%s%s%s LIMIT %d OFFSET %d",
		enrollmentColumns, enrollmentJoin, where, enrollmentOrder, limit, offset)

	enrollments := []models.EnrollmentRelations{}
	if err := r.db.SelectContext(ctx, &enrollments, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list enrollments page: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM enrollments e"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count enrollments: %w", err)
	}
	return enrollments, total, nil
}

// FindByID fetches an enrollment with its relations. Returns sql.ErrNoRows
// when absent.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id int64) (*models.EnrollmentRelations, error) {
	query := "SELECT " + enrollmentColumns + enrollmentJoin + " WHERE e.id = $1"
	var enrollment models.EnrollmentRelations
	if err := r.db.GetContext(ctx, &enrollment, query, id); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// FindByStudentAndCourse returns the enrollment rows linking a student and a
// course. At most one row exists under the uniqueness constraint.
func (r *EnrollmentRepository) FindByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]models.Enrollment, error) {
	const query = `SELECT id, student_id, course_id, enrollment_date, status, grade
        FROM enrollments WHERE student_id = $1 AND course_id = $2`
	enrollments := []models.Enrollment{}
	if err := r.db.SelectContext(ctx, &enrollments, query, studentID, courseID); err != nil {
		return nil, fmt.Errorf("find enrollment link: %w", err)
	}
	return enrollments, nil
}

// CoursesByStudent returns the courses a student is enrolled in, joined
// through enrollments.
func (r *EnrollmentRepository) CoursesByStudent(ctx context.Context, studentID int64) ([]models.Course, error) {
	const query = `SELECT c.id, c.name, c.description, c.teacher_id, c.duration_hours, c.price, c.start_date, c.end_date
        FROM courses c JOIN enrollments e ON e.course_id = c.id
        WHERE e.student_id = $1 ORDER BY c.id ASC`
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query, studentID); err != nil {
		return nil, fmt.Errorf("courses by student: %w", err)
	}
	return courses, nil
}

// StudentsByCourse returns the students enrolled in a course, joined through
// enrollments.
func (r *EnrollmentRepository) StudentsByCourse(ctx context.Context, courseID int64) ([]models.Student, error) {
	const query = `SELECT s.id, s.name, s.email, s.phone, s.birth_date, s.registration_date
        FROM students s JOIN enrollments e ON e.student_id = s.id
        WHERE e.course_id = $1 ORDER BY s.id ASC`
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, courseID); err != nil {
		return nil, fmt.Errorf("students by course: %w", err)
	}
	return students, nil
}

// Create inserts an enrollment and fills in the generated ID. A duplicate
// (student_id, course_id) pair fails on the unique index; callers inspect
// the error with errors.IsUniqueViolation.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	const query = `INSERT INTO enrollments (student_id, course_id, enrollment_date, status, grade)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, student_id, course_id, enrollment_date, status, grade`
	if err := r.db.GetContext(ctx, enrollment, query,
		enrollment.StudentID, enrollment.CourseID, enrollment.EnrollmentDate,
		enrollment.Status, enrollment.Grade); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// UpdateByID applies the non-nil patch fields and reports how many rows
// matched.
func (r *EnrollmentRepository) UpdateByID(ctx context.Context, id int64, patch models.EnrollmentPatch) (int64, error) {
	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.StudentID != nil {
		add("student_id", *patch.StudentID)
	}
	if patch.CourseID != nil {
		add("course_id", *patch.CourseID)
	}
	if patch.EnrollmentDate != nil {
		add("enrollment_date", *patch.EnrollmentDate)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Grade != nil {
		add("grade", *patch.Grade)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE enrollments SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update enrollment: %w", err)
	}
	return res.RowsAffected()
}

// DeleteByID removes one enrollment and reports the affected count.
func (r *EnrollmentRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM enrollments WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete enrollment: %w", err)
	}
	return res.RowsAffected()
}

// DeleteAll removes every enrollment and reports the affected count.
func (r *EnrollmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM enrollments")
	if err != nil {
		return 0, fmt.Errorf("delete all enrollments: %w", err)
	}
	return res.RowsAffected()
}

// Count returns the number of enrollment rows.
func (r *EnrollmentRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM enrollments"); err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return total, nil
}
