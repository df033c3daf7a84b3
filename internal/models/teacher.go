package models

// Teacher represents an instructor record.
type Teacher struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Email          string  `db:"email" json:"email"`
	Specialization *string `db:"specialization" json:"specialization"`
	Phone          *string `db:"phone" json:"phone"`
	HireDate       *Date   `db:"hire_date" json:"hire_date"`
}

// TeacherFilter captures list filtering options.
type TeacherFilter struct {
	Name string
}

// TeacherPatch carries the fields of a partial update. Nil fields are left
// untouched.
type TeacherPatch struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Specialization *string `json:"specialization"`
	Phone          *string `json:"phone"`
	HireDate       *Date   `json:"hire_date"`
}

// IsEmpty reports whether the patch carries no fields.
func (p TeacherPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Specialization == nil && p.Phone == nil && p.HireDate == nil
}
