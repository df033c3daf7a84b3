package models

// StatusActive is the default enrollment status. The column is an open
// string set, not an enum; "active" is only the default.
const StatusActive = "active"

// Enrollment links a student to a course and carries the state of that
// relationship. (student_id, course_id) is unique.
type Enrollment struct {
	ID             int64    `db:"id" json:"id"`
	StudentID      int64    `db:"student_id" json:"student_id"`
	CourseID       int64    `db:"course_id" json:"course_id"`
	EnrollmentDate Date     `db:"enrollment_date" json:"enrollment_date"`
	Status         string   `db:"status" json:"status"`
	Grade          *float64 `db:"grade" json:"grade"`
}

// EnrollmentRelations is an enrollment row with the eager-loaded student and
// course attributes the read path joins. The joins are LEFT JOINs: a student
// or course deleted out from under an enrollment leaves these nil.
type EnrollmentRelations struct {
	Enrollment
	StudentName  *string  `db:"student_name" json:"-"`
	StudentEmail *string  `db:"student_email" json:"-"`
	CourseName   *string  `db:"course_name" json:"-"`
	CoursePrice  *float64 `db:"course_price" json:"-"`
}

// EnrollmentView is the flat record returned to API clients. Missing
// relations project to "Unknown" / 0 by contract.
type EnrollmentView struct {
	ID             int64    `json:"id"`
	EnrollmentDate Date     `json:"enrollment_date"`
	Status         string   `json:"status"`
	Grade          *float64 `json:"grade"`
	StudentID      int64    `json:"student_id"`
	CourseID       int64    `json:"course_id"`
	StudentName    string   `json:"student_name"`
	StudentEmail   string   `json:"student_email"`
	CourseName     string   `json:"course_name"`
	Price          float64  `json:"price"`
}

// EnrollmentFilter captures list filtering options.
type EnrollmentFilter struct {
	StudentID *int64
	CourseID  *int64
}

// EnrollmentPatch carries the fields of a partial update.
type EnrollmentPatch struct {
	StudentID      *int64   `json:"student_id"`
	CourseID       *int64   `json:"course_id"`
	EnrollmentDate *Date    `json:"enrollment_date"`
	Status         *string  `json:"status"`
	Grade          *float64 `json:"grade"`
}

// IsEmpty reports whether the patch carries no fields.
func (p EnrollmentPatch) IsEmpty() bool {
	return p.StudentID == nil && p.CourseID == nil && p.EnrollmentDate == nil &&
		p.Status == nil && p.Grade == nil
}
