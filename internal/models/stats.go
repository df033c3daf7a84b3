package models

// Stats aggregates row counts across the five entity tables.
type Stats struct {
	Students    int `json:"students"`
	Teachers    int `json:"teachers"`
	Courses     int `json:"courses"`
	Lessons     int `json:"lessons"`
	Enrollments int `json:"enrollments"`
}
