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

// LessonHandler exposes lesson endpoints.
type LessonHandler struct {
	lessons *service.LessonService
}

// NewLessonHandler constructs LessonHandler.
func NewLessonHandler(lessons *service.LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

// List godoc
// @Summary List lessons
// @Tags Lessons
// @Produce json
// @Param course_id query int false "Filter by course"
// @Success 200 {array} models.Lesson
// @Router /lessons [get]
func (h *LessonHandler) List(c *gin.Context) {
	filter := models.LessonFilter{CourseID: queryID(c, "course_id")}
	lessons, err := h.lessons.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lessons)
}

// ListPaged returns a page of lessons.
func (h *LessonHandler) ListPaged(c *gin.Context) {
	filter := models.LessonFilter{CourseID: queryID(c, "course_id")}
	page, err := h.lessons.ListPaged(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

// Get returns a single lesson.
func (h *LessonHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	lesson, err := h.lessons.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson)
}

// Create godoc
// @Summary Create a lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Param payload body service.CreateLessonRequest true "Lesson payload"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} response.MessageBody
// @Router /lessons [post]
func (h *LessonHandler) Create(c *gin.Context) {
	var req service.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!"))
		return
	}
	lesson, err := h.lessons.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson)
}

// Update applies a partial update with the soft 200 contract.
func (h *LessonHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	var patch models.LessonPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Content can not be empty!"))
		return
	}
	affected, err := h.lessons.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	if affected == 1 {
		response.Message(c, "Lesson was updated successfully.")
		return
	}
	response.Message(c, fmt.Sprintf("Cannot update Lesson with id=%d. Maybe Lesson was not found or req.body is empty!", id))
}

// Delete removes one lesson.
func (h *LessonHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid id supplied"))
		return
	}
	affected, err := h.lessons.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if affected == 1 {
		response.Message(c, "Lesson was deleted successfully!")
		return
	}
	response.Message(c, fmt.Sprintf("Cannot delete Lesson with id=%d. Maybe Lesson was not found!", id))
}

// DeleteAll removes every lesson.
func (h *LessonHandler) DeleteAll(c *gin.Context) {
	affected, err := h.lessons.DeleteAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, fmt.Sprintf("%d Lessons were deleted successfully!", affected))
}
