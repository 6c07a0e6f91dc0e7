package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quoteforge/quoteforge/internal/probe"
	"github.com/quoteforge/quoteforge/internal/ratelimit"
	"github.com/quoteforge/quoteforge/internal/usage"
)

// validateKeyRequest is the shared payload of the validation endpoints.
type validateKeyRequest struct {
	Provider string `json:"provider"` // Provider identifier.
	APIKey   string `json:"apiKey"`   // Candidate key, used in flight only.
}

// validateKeyBasic runs the surface checks only; it never touches the
// network. It still shares the per-client request budget so a stuck
// client cannot spin on it.
func (s *Server) validateKeyBasic(c *gin.Context) {
	var body validateKeyRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	provider := strings.TrimSpace(body.Provider)
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider is required"})
		return
	}
	if _, ok := s.catalog.Get(provider); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown provider"})
		return
	}
	if !s.allowProbe(c, "validate-basic", provider) {
		return
	}

	result := s.validator.CheckFormat(body.APIKey, provider)
	c.JSON(http.StatusOK, gin.H{
		"valid":        result.Valid,
		"message":      result.Message,
		"suggestion":   result.Suggestion,
		"formatChecks": result.FormatChecks,
	})
}

// validateKey runs the full pipeline: format checks, live probe, and
// the diagnostic cascade on failure. Provider-reported failures come
// back as HTTP 200 soft verdicts.
func (s *Server) validateKey(c *gin.Context) {
	var body validateKeyRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	provider := strings.TrimSpace(body.Provider)
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider is required"})
		return
	}
	if !s.allowProbe(c, "validate", provider) {
		return
	}

	start := time.Now()
	result := s.validator.Validate(c.Request.Context(), body.APIKey, provider)
	s.usage.Record(c.Request.Context(), usage.Call{
		Capability: "probe",
		Provider:   provider,
		Model:      s.model,
		Duration:   time.Since(start),
		Success:    result.Valid,
	})

	c.JSON(http.StatusOK, gin.H{
		"valid":        result.Valid,
		"status":       result.Status,
		"message":      result.Message,
		"warning":      result.Warning,
		"suggestion":   result.Suggestion,
		"response":     result.Response,
		"formatChecks": result.FormatChecks,
	})
}

// debugProbe reports the raw outcome of a diagnostic call. It always
// answers 200 with a success flag in the body.
func (s *Server) debugProbe(c *gin.Context) {
	var body validateKeyRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	provider := strings.TrimSpace(body.Provider)
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider is required"})
		return
	}
	if !s.allowProbe(c, "debug-probe", provider) {
		return
	}

	report := s.prober.Debug(c.Request.Context(), body.APIKey, provider)
	c.JSON(http.StatusOK, report)
}

// allowProbe enforces the per-provider, per-client probe budget. It
// writes the 429 response itself when the budget is exhausted.
func (s *Server) allowProbe(c *gin.Context, endpoint, provider string) bool {
	key := ratelimit.KeyFor(endpoint, provider, c.ClientIP())
	result, errAllow := s.limiter.Allow(c.Request.Context(), key)
	if errAllow != nil || result.Allowed {
		return true
	}
	// The budget window is one second, so the retry hint is constant.
	c.Header("Retry-After", "1")
	c.Header("X-RateLimit-Limit", strconv.Itoa(s.limiter.Limit()))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":  "too many validation attempts, slow down",
		"status": probe.StatusRateLimited,
	})
	return false
}
