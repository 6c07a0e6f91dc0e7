package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// getUsage reports per-capability call totals for the trailing window.
func (s *Server) getUsage(c *gin.Context) {
	hours := 24
	if raw := c.Query("hours"); raw != "" {
		parsed, errParse := strconv.Atoi(raw)
		if errParse != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be a positive integer"})
			return
		}
		hours = parsed
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	summaries, errQuery := s.usage.Summarize(c.Request.Context(), since)
	if errQuery != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errQuery.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"since":        since.UTC(),
		"capabilities": summaries,
	})
}
