package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quoteforge/quoteforge/internal/settings"
)

func (s *Server) getSettings(c *gin.Context) {
	loaded, errLoad := s.settings.Load(c.Request.Context())
	if errLoad != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errLoad.Error()})
		return
	}
	c.JSON(http.StatusOK, loaded)
}

func (s *Server) saveSettings(c *gin.Context) {
	var raw map[string]json.RawMessage
	if errBind := c.ShouldBindJSON(&raw); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	for field := range raw {
		if isKeyField(field) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "API keys are stored client-side only"})
			return
		}
	}

	payload, errMarshal := json.Marshal(raw)
	if errMarshal != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	var body settings.Settings
	if errDecode := json.Unmarshal(payload, &body); errDecode != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if errSave := s.settings.Save(c.Request.Context(), body); errSave != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errSave.Error()})
		return
	}
	saved, errLoad := s.settings.Load(c.Request.Context())
	if errLoad != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errLoad.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings saved successfully",
		"settings": saved,
	})
}

// isKeyField flags payload fields that would carry a provider secret.
func isKeyField(field string) bool {
	return strings.Contains(strings.ToLower(field), "apikey")
}
