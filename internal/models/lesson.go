package models

// Lesson represents a lesson within a course. course_id is required: lessons
// do not exist outside their course.
type Lesson struct {
	ID              int64   `db:"id" json:"id"`
	CourseID        int64   `db:"course_id" json:"course_id"`
	Title           string  `db:"title" json:"title"`
	Content         *string `db:"content" json:"content"`
	LessonOrder     *int    `db:"lesson_order" json:"lesson_order"`
	DurationMinutes *int    `db:"duration_minutes" json:"duration_minutes"`
	LessonDate      *Date   `db:"lesson_date" json:"lesson_date"`
}

// LessonFilter captures list filtering options.
type LessonFilter struct {
	CourseID *int64
}

// LessonPatch carries the fields of a partial update.
type LessonPatch struct {
	CourseID        *int64  `json:"course_id"`
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	LessonOrder     *int    `json:"lesson_order"`
	DurationMinutes *int    `json:"duration_minutes"`
	LessonDate      *Date   `json:"lesson_date"`
}

// IsEmpty reports whether the patch carries no fields.
func (p LessonPatch) IsEmpty() bool {
	return p.CourseID == nil && p.Title == nil && p.Content == nil &&
		p.LessonOrder == nil && p.DurationMinutes == nil && p.LessonDate == nil
}
