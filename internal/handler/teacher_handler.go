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

// TeacherHandler exposes teacher endpoints.
type TeacherHandler struct {
	teachers *service.TeacherService
}

// NewTeacherHandler constructs TeacherHandler.
func NewTeacherHandler(teachers *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

// List godoc
// @Summary List teachers
// @Tags Teachers
// @Produce json
// @Param name query string false "Filter by name substring"
// @Success 200 {array} models.Teacher
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	filter := models.TeacherFilter{Name: c.Query("name")}
	teachers, err := h.teachers.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers)
}

// ListPaged godoc
// @Summary List teachers with pagination
// @Tags Teachers
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[models.Teacher]
// @Router /teachers/paged [get]
func (h *TeacherHandler) ListPaged(c *gin.Context) {
	filter := models.TeacherFilter{Name: c.Query("name")}
	page, err := h.teachers.ListPaged(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

// Get godoc
// @Summary Get a teacher by ID
// @Tags Teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.Teacher
// @Failure 404 {object} response.MessageBody
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	teacher, err := h.teachers.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher)
}

// Create godoc
// @Summary Create a teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body service.CreateTeacherRequest true "Teacher payload"
// @Success 200 {object} models.Teacher
// @Failure 400 {object} response.MessageBody
// @Router /teachers [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var req service.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!"))
		return
	}
	teacher, err := h.teachers.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher)
}

// Update applies a partial update. A zero-row outcome is reported with a
// soft 200 message, exactly like the legacy API.
func (h *TeacherHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	var patch models.TeacherPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!"))
		return
	}
	affected, err := h.teachers.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	if affected == 1 {
		response.Message(c, "Teacher was updated successfully.")
		return
	}
	response.Message(c, fmt.Sprintf("Cannot update Teacher with id=%d. Maybe Teacher was not found or req.body is empty!", id))
}

// Delete removes one teacher.
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	affected, err := h.teachers.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if affected == 1 {
		response.Message(c, "Teacher was deleted successfully!")
		return
	}
	response.Message(c, fmt.Sprintf("Cannot delete Teacher with id=%d. Maybe Teacher was not found!", id))
}

// DeleteAll removes every teacher.
func (h *TeacherHandler) DeleteAll(c *gin.Context) {
	affected, err := h.teachers.DeleteAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, fmt.Sprintf("%d Teachers were deleted successfully!", affected))
}

// Courses lists the courses owned by a teacher.
func (h *TeacherHandler) Courses(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	courses, err := h.teachers.Courses(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}
