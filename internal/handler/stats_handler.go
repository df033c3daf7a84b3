package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/online-school-api/internal/service"
	"github.com/noah-isme/online-school-api/pkg/response"
)

// StatsHandler exposes the dashboard counts endpoint.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get godoc
// @Summary Entity counts for the dashboard
// @Tags Stats
// @Produce json
// @Success 200 {object} models.Stats
// @Router /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
