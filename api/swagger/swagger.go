package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Online School API",
        "description": "CRUD API for students, teachers, courses, lessons and enrollments",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Teachers", "description": "Teacher management"},
        {"name": "Students", "description": "Student management"},
        {"name": "Courses", "description": "Course catalog with teacher details"},
        {"name": "Lessons", "description": "Lessons inside a course"},
        {"name": "Enrollments", "description": "Student course registrations"},
        {"name": "Stats", "description": "Dashboard counts"}
    ],
    "paths": {
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Teacher"}}}
                }
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Create teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeacherRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete all teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/teachers/paged": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers with pagination",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TeacherPage"}}
                }
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "put": {
                "tags": ["Teachers"],
                "summary": "Update teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeacherPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/teachers/{id}/courses": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List courses taught by a teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete all students",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/students/paged": {
            "get": {
                "tags": ["Students"],
                "summary": "List students with pagination",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentPage"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/students/{id}/courses": {
            "get": {
                "tags": ["Students"],
                "summary": "List courses a student is enrolled in",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses with teacher details",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/CourseView"}}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete all courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/courses/paged": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses with pagination",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CoursePage"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course with teacher details",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CoursePatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/courses/{id}/teachername": {
            "get": {
                "tags": ["Courses"],
                "summary": "Teacher name for a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseTeacherName"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/courses/{id}/teachername-named": {
            "get": {
                "tags": ["Courses"],
                "summary": "Teacher name for a course (named parameter variant)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseTeacherName"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/courses/{id}/teacher": {
            "get": {
                "tags": ["Courses"],
                "summary": "Full teacher row for a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/courses/{id}/teacher-sub": {
            "get": {
                "tags": ["Courses"],
                "summary": "Teacher name via subquery",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseTeacherName"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/courses/{id}/lessons": {
            "get": {
                "tags": ["Courses"],
                "summary": "List lessons of a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Lesson"}}}
                }
            }
        },
        "/courses/{id}/students": {
            "get": {
                "tags": ["Courses"],
                "summary": "List students enrolled in a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}}
                }
            }
        },
        "/lessons": {
            "get": {
                "tags": ["Lessons"],
                "summary": "List lessons",
                "parameters": [
                    {"name": "course_id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Lesson"}}}
                }
            },
            "post": {
                "tags": ["Lessons"],
                "summary": "Create lesson",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateLessonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Lesson"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Lessons"],
                "summary": "Delete all lessons",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/lessons/{id}": {
            "get": {
                "tags": ["Lessons"],
                "summary": "Get lesson",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Lesson"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "put": {
                "tags": ["Lessons"],
                "summary": "Update lesson",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LessonPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Lessons"],
                "summary": "Delete lesson",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/enrollments": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "List enrollments with student and course details",
                "parameters": [
                    {"name": "student_id", "in": "query", "type": "integer"},
                    {"name": "course_id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/EnrollmentView"}}}
                }
            },
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll a student in a course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEnrollmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Enrollment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "500": {"description": "Duplicate enrollment", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Enrollments"],
                "summary": "Delete all enrollments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/enrollments/link": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "Raw enrollment rows linking a student and a course",
                "parameters": [
                    {"name": "student_id", "in": "query", "required": true, "type": "integer"},
                    {"name": "course_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Enrollment"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/enrollments/{id}": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "Get enrollment with student and course details",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EnrollmentView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "put": {
                "tags": ["Enrollments"],
                "summary": "Update enrollment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Enrollments"],
                "summary": "Delete enrollment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["Stats"],
                "summary": "Entity counts for the dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Stats"}}
                }
            }
        }
    },
    "definitions": {
        "Teacher": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "specialization": {"type": "string"},
                "phone": {"type": "string"},
                "hire_date": {"type": "string"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "birth_date": {"type": "string"},
                "registration_date": {"type": "string"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "teacher_id": {"type": "integer"},
                "duration_hours": {"type": "integer"},
                "price": {"type": "number"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"}
            }
        },
        "CourseView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "teacher_id": {"type": "integer"},
                "duration_hours": {"type": "integer"},
                "price": {"type": "number"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "teacher_name": {"type": "string"},
                "specialization": {"type": "string"}
            }
        },
        "CourseTeacherName": {
            "type": "object",
            "properties": {
                "course_id": {"type": "integer"},
                "teacher_name": {"type": "string"}
            }
        },
        "Lesson": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "course_id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "lesson_order": {"type": "integer"},
                "duration_minutes": {"type": "integer"},
                "lesson_date": {"type": "string"}
            }
        },
        "Enrollment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "student_id": {"type": "integer"},
                "course_id": {"type": "integer"},
                "enrollment_date": {"type": "string"},
                "status": {"type": "string"},
                "grade": {"type": "number"}
            }
        },
        "EnrollmentView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "enrollment_date": {"type": "string"},
                "status": {"type": "string"},
                "grade": {"type": "number"},
                "student_id": {"type": "integer"},
                "course_id": {"type": "integer"},
                "student_name": {"type": "string"},
                "student_email": {"type": "string"},
                "course_name": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "Stats": {
            "type": "object",
            "properties": {
                "students": {"type": "integer"},
                "teachers": {"type": "integer"},
                "courses": {"type": "integer"},
                "lessons": {"type": "integer"},
                "enrollments": {"type": "integer"}
            }
        },
        "CreateTeacherRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "specialization": {"type": "string"},
                "phone": {"type": "string"},
                "hire_date": {"type": "string"}
            },
            "required": ["name", "email"]
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "birth_date": {"type": "string"},
                "registration_date": {"type": "string"}
            },
            "required": ["name", "email"]
        },
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "teacher_id": {"type": "integer"},
                "duration_hours": {"type": "integer"},
                "price": {"type": "number"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"}
            },
            "required": ["name"]
        },
        "CreateLessonRequest": {
            "type": "object",
            "properties": {
                "course_id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "lesson_order": {"type": "integer"},
                "duration_minutes": {"type": "integer"},
                "lesson_date": {"type": "string"}
            },
            "required": ["course_id", "title"]
        },
        "CreateEnrollmentRequest": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"},
                "course_id": {"type": "integer"},
                "enrollment_date": {"type": "string"},
                "status": {"type": "string"},
                "grade": {"type": "number"}
            },
            "required": ["student_id", "course_id"]
        },
        "TeacherPatch": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "specialization": {"type": "string"},
                "phone": {"type": "string"},
                "hire_date": {"type": "string"}
            }
        },
        "StudentPatch": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "birth_date": {"type": "string"},
                "registration_date": {"type": "string"}
            }
        },
        "CoursePatch": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "teacher_id": {"type": "integer"},
                "duration_hours": {"type": "integer"},
                "price": {"type": "number"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"}
            }
        },
        "LessonPatch": {
            "type": "object",
            "properties": {
                "course_id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "lesson_order": {"type": "integer"},
                "duration_minutes": {"type": "integer"},
                "lesson_date": {"type": "string"}
            }
        },
        "EnrollmentPatch": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"},
                "course_id": {"type": "integer"},
                "enrollment_date": {"type": "string"},
                "status": {"type": "string"},
                "grade": {"type": "number"}
            }
        },
        "TeacherPage": {
            "type": "object",
            "properties": {
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/Teacher"}}
            }
        },
        "StudentPage": {
            "type": "object",
            "properties": {
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/Student"}}
            }
        },
        "CoursePage": {
            "type": "object",
            "properties": {
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/CourseView"}}
            }
        },
        "MessageBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
