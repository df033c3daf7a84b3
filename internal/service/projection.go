package service

import "github.com/noah-isme/online-school-api/internal/models"

// unknownValue substitutes for a missing relation attribute in enrollment
// views. The front-end renders it verbatim, so it is part of the contract.
const unknownValue = "Unknown"

// ProjectCourse flattens a course row into the API shape, lifting the
// eager-loaded teacher attributes to sibling fields. A course without a
// teacher keeps both fields null.
func ProjectCourse(row models.CourseRelations) models.CourseView {
	return models.CourseView{
		Course:         row.Course,
		TeacherName:    row.TeacherName,
		Specialization: row.TeacherSpecialization,
	}
}

// ProjectCourses maps a sequence of course rows, preserving order.
func ProjectCourses(rows []models.CourseRelations) []models.CourseView {
	views := make([]models.CourseView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ProjectCourse(row))
	}
	return views
}

// ProjectEnrollment flattens an enrollment row into the API shape. Missing
// student or course attributes project to "Unknown", a missing price to 0.
func ProjectEnrollment(row models.EnrollmentRelations) models.EnrollmentView {
	view := models.EnrollmentView{
		ID:             row.ID,
		EnrollmentDate: row.EnrollmentDate,
		Status:         row.Status,
		Grade:          row.Grade,
		StudentID:      row.StudentID,
		CourseID:       row.CourseID,
		StudentName:    unknownValue,
		StudentEmail:   unknownValue,
		CourseName:     unknownValue,
	}
	if row.StudentName != nil {
		view.StudentName = *row.StudentName
	}
	if row.StudentEmail != nil {
		view.StudentEmail = *row.StudentEmail
	}
	if row.CourseName != nil {
		view.CourseName = *row.CourseName
	}
	if row.CoursePrice != nil {
		view.Price = *row.CoursePrice
	}
	return view
}

// ProjectEnrollments maps a sequence of enrollment rows, preserving order.
func ProjectEnrollments(rows []models.EnrollmentRelations) []models.EnrollmentView {
	views := make([]models.EnrollmentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ProjectEnrollment(row))
	}
	return views
}
