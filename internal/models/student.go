package models

// Student represents a learner record.
type Student struct {
	ID               int64   `db:"id" json:"id"`
	Name             string  `db:"name" json:"name"`
	Email            string  `db:"email" json:"email"`
	Phone            *string `db:"phone" json:"phone"`
	BirthDate        *Date   `db:"birth_date" json:"birth_date"`
	RegistrationDate *Date   `db:"registration_date" json:"registration_date"`
}

// StudentFilter captures list filtering options.
type StudentFilter struct {
	Name string
}

// StudentPatch carries the fields of a partial update.
type StudentPatch struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	BirthDate        *Date   `json:"birth_date"`
	RegistrationDate *Date   `json:"registration_date"`
}

// IsEmpty reports whether the patch carries no fields.
func (p StudentPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.BirthDate == nil && p.RegistrationDate == nil
}
