package handler

import "github.com/gin-gonic/gin"

// Routes bundles the API handlers for registration on a gin router group.
type Routes struct {
	Teachers    *TeacherHandler
	Students    *StudentHandler
	Courses     *CourseHandler
	Lessons     *LessonHandler
	Enrollments *EnrollmentHandler
	Stats       *StatsHandler
}

// Register wires every API route under the given group (normally /api).
func (r Routes) Register(api *gin.RouterGroup) {
	teachers := api.Group("/teachers")
	teachers.POST("", r.Teachers.Create)
	teachers.GET("", r.Teachers.List)
	teachers.GET("/paged", r.Teachers.ListPaged)
	teachers.GET("/:id", r.Teachers.Get)
	teachers.GET("/:id/courses", r.Teachers.Courses)
	teachers.PUT("/:id", r.Teachers.Update)
	teachers.DELETE("/:id", r.Teachers.Delete)
	teachers.DELETE("", r.Teachers.DeleteAll)

	students := api.Group("/students")
	students.POST("", r.Students.Create)
	students.GET("", r.Students.List)
	students.GET("/paged", r.Students.ListPaged)
	students.GET("/:id", r.Students.Get)
	students.GET("/:id/courses", r.Students.Courses)
	students.PUT("/:id", r.Students.Update)
	students.DELETE("/:id", r.Students.Delete)
	students.DELETE("", r.Students.DeleteAll)

	courses := api.Group("/courses")
	courses.POST("", r.Courses.Create)
	courses.GET("", r.Courses.List)
	courses.GET("/paged", r.Courses.ListPaged)
	courses.GET("/:id", r.Courses.Get)
	courses.GET("/:id/teachername", r.Courses.TeacherName)
	courses.GET("/:id/teachername-named", r.Courses.TeacherNameNamed)
	courses.GET("/:id/teacher", r.Courses.Teacher)
	courses.GET("/:id/teacher-sub", r.Courses.TeacherSub)
	courses.GET("/:id/lessons", r.Courses.Lessons)
	courses.GET("/:id/students", r.Courses.Students)
	courses.PUT("/:id", r.Courses.Update)
	courses.DELETE("/:id", r.Courses.Delete)
	courses.DELETE("", r.Courses.DeleteAll)

	lessons := api.Group("/lessons")
	lessons.POST("", r.Lessons.Create)
	lessons.GET("", r.Lessons.List)
	lessons.GET("/paged", r.Lessons.ListPaged)
	lessons.GET("/:id", r.Lessons.Get)
	lessons.PUT("/:id", r.Lessons.Update)
	lessons.DELETE("/:id", r.Lessons.Delete)
	lessons.DELETE("", r.Lessons.DeleteAll)

	enrollments := api.Group("/enrollments")
	enrollments.POST("", r.Enrollments.Create)
	enrollments.GET("", r.Enrollments.List)
	enrollments.GET("/paged", r.Enrollments.ListPaged)
	enrollments.GET("/link", r.Enrollments.Link)
	enrollments.GET("/:id", r.Enrollments.Get)
	enrollments.PUT("/:id", r.Enrollments.Update)
	enrollments.DELETE("/:id", r.Enrollments.Delete)
	enrollments.DELETE("", r.Enrollments.DeleteAll)

	api.GET("/stats", r.Stats.Get)
}
