package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// listProviders returns the provider catalog, optionally filtered by
// category and cost tier.
func (s *Server) listProviders(c *gin.Context) {
	category := c.Query("category")
	costFilter := c.Query("costFilter")

	providers := s.catalog.Filter(category, costFilter)
	out := gin.H{
		"providers": providers,
		"total":     len(providers),
	}
	if strings.TrimSpace(category) == "" || strings.EqualFold(category, "all") {
		out["categories"] = s.catalog.Categories(costFilter)
	}
	c.JSON(http.StatusOK, out)
}
