package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quoteforge/quoteforge/internal/workflow"
)

func (s *Server) createWorkflow(c *gin.Context) {
	var body workflow.Request
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Quote) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quote is required"})
		return
	}

	state, errStart := s.workflows.Start(c.Request.Context(), body)
	if errStart != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errStart.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workflowId":  state.ID,
		"status":      state.Status,
		"currentStep": state.CurrentStep,
		"totalSteps":  state.TotalSteps,
		"steps":       state.Steps,
		"message":     "Workflow started successfully",
	})
}

func (s *Server) getWorkflow(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Workflow id is required"})
		return
	}

	state, errFind := s.workflows.Get(c.Request.Context(), id)
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errFind.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}
