package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/online-school-api/internal/models"
)

const studentColumns = "id, name, email, phone, birth_date, registration_date"

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students, optionally filtered by a case-insensitive name
// substring, in primary-key order.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students", studentColumns)
	var args []interface{}
	if filter.Name != "" {
		query += " WHERE name ILIKE $1"
		args = append(args, "%"+filter.Name+"%")
	}
	query += " ORDER BY id ASC"

	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// ListPaged returns one window of students plus the total row count.
func (r *StudentRepository) ListPaged(ctx context.Context, filter models.StudentFilter, limit, offset int) ([]models.Student, int, error) {
	where := ""
	var args []interface{}
	if filter.Name != "" {
		where = " WHERE name ILIKE $1"
		args = append(args, "%"+filter.Name+"%")
	}

	query := fmt.Sprintf("SELECT %s FROM students%s ORDER BY id ASC LIMIT %d OFFSET %d", studentColumns, where, limit, offset)
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list students page: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM students"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

// FindByID fetches a student by ID. Returns sql.ErrNoRows when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE id = $1", studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a student and fills in the generated ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := fmt.Sprintf(`INSERT INTO students (name, email, phone, birth_date, registration_date)
        VALUES ($1, $2, $3, $4, $5) RETURNING %s`, studentColumns)
	if err := r.db.GetContext(ctx, student, query,
		student.Name, student.Email, student.Phone, student.BirthDate, student.RegistrationDate); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// UpdateByID applies the non-nil patch fields and reports how many rows
// matched.
func (r *StudentRepository) UpdateByID(ctx context.Context, id int64, patch models.StudentPatch) (int64, error) {
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
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.BirthDate != nil {
		add("birth_date", *patch.BirthDate)
	}
	if patch.RegistrationDate != nil {
		add("registration_date", *patch.RegistrationDate)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE students SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update student: %w", err)
	}
	return res.RowsAffected()
}

// DeleteByID removes one student and reports the affected count.
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete student: %w", err)
	}
	return res.RowsAffected()
}

// DeleteAll removes every student and reports the affected count.
func (r *StudentRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM students")
	if err != nil {
		return 0, fmt.Errorf("delete all students: %w", err)
	}
	return res.RowsAffected()
}

// Count returns the number of student rows.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM students"); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return total, nil
}
