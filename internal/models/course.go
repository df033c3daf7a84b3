package models

// Course represents a course record. teacher_id is nullable: a course
// survives its teacher being removed.
type Course struct {
	ID            int64    `db:"id" json:"id"`
	Name          string   `db:"name" json:"name"`
	Description   *string  `db:"description" json:"description"`
	TeacherID     *int64   `db:"teacher_id" json:"teacher_id"`
	DurationHours *int     `db:"duration_hours" json:"duration_hours"`
	Price         *float64 `db:"price" json:"price"`
	StartDate     *Date    `db:"start_date" json:"start_date"`
	EndDate       *Date    `db:"end_date" json:"end_date"`
}

// CourseRelations is a course row with the two teacher attributes the read
// path eager-loads. Only name and specialization are joined, never the full
// teacher row.
type CourseRelations struct {
	Course
	TeacherName           *string `db:"teacher_name" json:"-"`
	TeacherSpecialization *string `db:"teacher_specialization" json:"-"`
}

// CourseView is the flat shape returned to API clients: the course fields
// with the joined teacher attributes as siblings.
type CourseView struct {
	Course
	TeacherName    *string `json:"teacher_name"`
	Specialization *string `json:"specialization"`
}

// CourseFilter captures list filtering options.
type CourseFilter struct {
	Name string
}

// CoursePatch carries the fields of a partial update.
type CoursePatch struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	TeacherID     *int64   `json:"teacher_id"`
	DurationHours *int     `json:"duration_hours"`
	Price         *float64 `json:"price"`
	StartDate     *Date    `json:"start_date"`
	EndDate       *Date    `json:"end_date"`
}

// IsEmpty reports whether the patch carries no fields.
func (p CoursePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.TeacherID == nil &&
		p.DurationHours == nil && p.Price == nil && p.StartDate == nil && p.EndDate == nil
}

// CourseTeacherName is the payload of the teacher-name lookup sub-routes.
type CourseTeacherName struct {
	CourseID    int64  `db:"course_id" json:"course_id"`
	TeacherName string `db:"teacher_name" json:"teacher_name"`
}
