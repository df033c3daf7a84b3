package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/online-school-api/internal/models"
)

// pathID parses the :id path segment.
func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// pageRequest reads page/size from the query string. Missing or non-numeric
// values come back zero and are clamped to the defaults downstream.
func pageRequest(c *gin.Context) models.PageRequest {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	return models.PageRequest{Page: page, Size: size}
}

// queryID parses an optional numeric query parameter.
func queryID(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
