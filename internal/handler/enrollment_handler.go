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

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List godoc
// @Summary List enrollments with student and course details
// @Tags Enrollments
// @Produce json
// @Param student_id query int false "Filter by student"
// @Param course_id query int false "Filter by course"
// @Success 200 {array} models.EnrollmentView
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	filter := models.EnrollmentFilter{
		StudentID: queryID(c, "student_id"),
		CourseID:  queryID(c, "course_id"),
	}
	enrollments, err := h.enrollments.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollments)
}

// ListPaged godoc
// @Summary List enrollments with pagination
// @Tags Enrollments
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[models.EnrollmentView]
// @Router /enrollments/paged [get]
func (h *EnrollmentHandler) ListPaged(c *gin.Context) {
	filter := models.EnrollmentFilter{
		StudentID: queryID(c, "student_id"),
		CourseID:  queryID(c, "course_id"),
	}
	page, err := h.enrollments.ListPaged(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

// Get returns a single projected enrollment.
func (h *EnrollmentHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	enrollment, err := h.enrollments.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollment)
}

// Link returns the raw enrollment rows connecting one student and one
// course, used to check enrollment state before writing.
func (h *EnrollmentHandler) Link(c *gin.Context) {
	studentID := queryID(c, "student_id")
	courseID := queryID(c, "course_id")
	if studentID == nil || courseID == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Student ID and Course ID are required!"))
		return
	}
	enrollments, err := h.enrollments.Link(c.Request.Context(), *studentID, *courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollments)
}

// Create godoc
// @Summary Enroll a student in a course
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body service.CreateEnrollmentRequest true "Enrollment payload"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} response.MessageBody
// @Failure 500 {object} response.MessageBody
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req service.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Student ID and Course ID are required!"))
		return
	}
	enrollment, err := h.enrollments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollment)
}

// Update applies a partial update with the soft 200 contract.
func (h *EnrollmentHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	var patch models.EnrollmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!"))
		return
	}
	affected, err := h.enrollments.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	if affected == 1 {
		response.Message(c, "Enrollment was updated successfully.")
		return
	}
	response.Message(c, fmt.Sprintf("Cannot update Enrollment with id=%d. Maybe Enrollment was not found or req.body is empty!", id))
}

// Delete removes one enrollment.
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	affected, err := h.enrollments.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if affected == 1 {
		response.Message(c, "Enrollment was deleted successfully!")
		return
	}
	response.Message(c, fmt.Sprintf("Cannot delete Enrollment with id=%d. Maybe Enrollment was not found!", id))
}

// DeleteAll removes every enrollment.
func (h *EnrollmentHandler) DeleteAll(c *gin.Context) {
	affected, err := h.enrollments.DeleteAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, fmt.Sprintf("%d Enrollments were deleted successfully!", affected))
}
