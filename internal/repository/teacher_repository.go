package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/online-school-api/internal/models"
)

const teacherColumns = "id, name, email, specialization, phone, hire_date"

// TeacherRepository manages persistence for teacher records.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns teachers, optionally filtered by a case-insensitive name
// substring, in primary-key order.
func (r *TeacherRepository) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers", teacherColumns)
	var args []interface{}
	if filter.Name != "" {
		query += " WHERE name ILIKE $1"
		args = append(args, "%"+filter.Name+"%")
	}
	query += " ORDER BY id ASC"

	teachers := []models.Teacher{}
	if err := r.db.SelectContext(ctx, &teachers, query, args...); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// ListPaged returns one window of teachers plus the total row count.
func (r *TeacherRepository) ListPaged(ctx context.Context, filter models.TeacherFilter, limit, offset int) ([]models.Teacher, int, error) {
	where := ""
	var args []interface{}
	if filter.Name != "" {
		where = " WHERE name ILIKE $1"
		args = append(args, "%"+filter.Name+"%")
	}

	query := fmt.Sprintf("SELECT %s FROM teachers%s ORDER BY id ASC LIMIT %d OFFSET %d", teacherColumns, where, limit, offset)
	teachers := []models.Teacher{}
	if err := r.db.SelectContext(ctx, &teachers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list teachers page: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM teachers"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count teachers: %w", err)
	}
	return teachers, total, nil
}

// FindByID fetches a teacher by ID. Returns sql.ErrNoRows when absent.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers WHERE id = $1", teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create inserts a teacher and fills in the generated ID.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := fmt.Sprintf(`INSERT INTO teachers (name, email, specialization, phone, hire_date)
        VALUES ($1, $2, $3, $4, $5) RETURNING %s`, teacherColumns)
	if err := r.db.GetContext(ctx, teacher, query,
		teacher.Name, teacher.Email, teacher.Specialization, teacher.Phone, teacher.HireDate); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// UpdateByID applies the non-nil patch fields and reports how many rows
// matched. Zero means the id was absent or the patch was empty.
func (r *TeacherRepository) UpdateByID(ctx context.Context, id int64, patch models.TeacherPatch) (int64, error) {
	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Specialization != nil {
		add("specialization", *patch.Specialization)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.HireDate != nil {
		add("hire_date", *patch.HireDate)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE teachers SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update teacher: %w", err)
	}
	return res.RowsAffected()
}

// DeleteByID removes one teacher and reports the affected count.
func (r *TeacherRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM teachers WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete teacher: %w", err)
	}
	return res.RowsAffected()
}

// DeleteAll removes every teacher and reports the affected count.
func (r *TeacherRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM teachers")
	if err != nil {
		return 0, fmt.Errorf("delete all teachers: %w", err)
	}
	return res.RowsAffected()
}

// Count returns the number of teacher rows.
func (r *TeacherRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM teachers"); err != nil {
		return 0, fmt.Errorf("count teachers: %w", err)
	}
	return total, nil
}
