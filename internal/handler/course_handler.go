package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/online-school-api/internal/models"
	"github.com/noah-isme/online-school-api/internal/service"
	appErrors "github.com/noah-isme/online-school-api/pkg/errors"
	"github.com/noah-isme/online-school-api/pkg/response"
)

// CourseHandler exposes course endpoints, including the four teacher-lookup
// variants carried over from the legacy API.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses with teacher name and specialization
// @Tags Courses
// @Produce json
// @Param name query string false "Filter by name substring"
// @Success 200 {array} models.CourseView
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	filter := models.CourseFilter{Name: c.Query("name")}
	courses, err := h.courses.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// ListPaged godoc
// @Summary List courses with pagination
// @Tags Courses
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[models.CourseView]
// @Router /courses/paged [get]
func (h *CourseHandler) ListPaged(c *gin.Context) {
	filter := models.CourseFilter{Name: c.Query("name")}
	page, err := h.courses.ListPaged(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

// Get godoc
// @Summary Get a course by ID
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseView
// @Failure 404 {object} response.MessageBody
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Create godoc
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body service.CreateCourseRequest true "Course payload"
// @Success 200 {object} models.Course
// @Failure 400 {object} response.MessageBody
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!"))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Update applies a partial update with the soft 200 contract.
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	var patch models.CoursePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!"))
		return
	}
	affected, err := h.courses.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	if affected == 1 {
		response.Message(c, "Course was updated successfully.")
		return
	}
	response.Message(c, fmt.Sprintf("Cannot update Course with id=%d. Maybe Course was not found or req.body is empty!", id))
}

// Delete removes one course.
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	affected, err := h.courses.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if affected == 1 {
		response.Message(c, "Course was deleted successfully!")
		return
	}
	response.Message(c, fmt.Sprintf("Cannot delete Course with id=%d. Maybe Course was not found!", id))
}

// DeleteAll removes every course.
func (h *CourseHandler) DeleteAll(c *gin.Context) {
	affected, err := h.courses.DeleteAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, fmt.Sprintf("%d Courses were deleted successfully!", affected))
}

// TeacherName returns the course's teacher name (positional SQL variant).
func (h *CourseHandler) TeacherName(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	result, err := h.courses.TeacherName(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// TeacherNameNamed returns the course's teacher name (named SQL variant).
func (h *CourseHandler) TeacherNameNamed(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	result, err := h.courses.TeacherNameNamed(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Teacher returns the course's full teacher row.
func (h *CourseHandler) Teacher(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	teacher, err := h.courses.Teacher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher)
}

// TeacherSub keeps the legacy string-substitution route alive with the same
// response contract; the query underneath is parameter-bound.
func (h *CourseHandler) TeacherSub(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	teacher, err := h.courses.TeacherDirect(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher)
}

// Lessons lists a course's lessons in teaching order.
func (h *CourseHandler) Lessons(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	lessons, err := h.courses.Lessons(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lessons)
}

// Students lists the students enrolled in a course.
func (h *CourseHandler) Students(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	students, err := h.courses.Students(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}
