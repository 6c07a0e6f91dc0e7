package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quoteforge/quoteforge/internal/anthropic"
	"github.com/quoteforge/quoteforge/internal/generate"
	"github.com/quoteforge/quoteforge/internal/usage"
)

// generateQuoteRequest is the quote endpoint payload.
type generateQuoteRequest struct {
	Idea        string `json:"idea"`        // Seed idea for the quote.
	Philosopher string `json:"philosopher"` // Optional voice to emulate.
	QuoteType   string `json:"quoteType"`   // philosophical, life_psychology, mixed.
	PromptStyle string `json:"promptStyle"` // analytical, creative, balanced.
	APIKey      string `json:"apiKey"`      // Provider key, used in flight only.
}

func (s *Server) generateQuote(c *gin.Context) {
	var body generateQuoteRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Idea) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Idea is required"})
		return
	}
	if strings.TrimSpace(body.APIKey) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "API key is required"})
		return
	}

	start := time.Now()
	result, errGen := s.gen.Quote(c.Request.Context(), body.APIKey, generate.QuoteParams{
		Idea:        body.Idea,
		Philosopher: body.Philosopher,
		QuoteType:   body.QuoteType,
		PromptStyle: body.PromptStyle,
	})
	s.recordGeneration("quote", result.Tokens, time.Since(start), errGen)
	if errGen != nil {
		s.writeGenerationError(c, errGen)
		return
	}
	c.JSON(http.StatusOK, result)
}

// generateBackgroundRequest is the background endpoint payload.
type generateBackgroundRequest struct {
	Provider string `json:"provider"`
	Style    string `json:"style"`
	Quote    string `json:"quote"`
	APIKey   string `json:"apiKey"`
}

func (s *Server) generateBackground(c *gin.Context) {
	var body generateBackgroundRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Provider) == "" || strings.TrimSpace(body.Style) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider and style are required"})
		return
	}

	start := time.Now()
	result, errGen := s.gen.Background(c.Request.Context(), body.APIKey, generate.BackgroundParams{
		Provider: body.Provider,
		Style:    body.Style,
		Quote:    body.Quote,
	})
	s.recordGeneration("background", result.Tokens, time.Since(start), errGen)
	if errGen != nil {
		s.writeGenerationError(c, errGen)
		return
	}
	c.JSON(http.StatusOK, result)
}

// generateMusicRequest is the music endpoint payload.
type generateMusicRequest struct {
	Provider string `json:"provider"`
	Genre    string `json:"genre"`
	Mood     string `json:"mood"`
	Duration int    `json:"duration"`
	Quote    string `json:"quote"`
	APIKey   string `json:"apiKey"`
}

func (s *Server) generateMusic(c *gin.Context) {
	var body generateMusicRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Provider) == "" || strings.TrimSpace(body.Genre) == "" ||
		strings.TrimSpace(body.Mood) == "" || body.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider, genre, mood, and duration are required"})
		return
	}

	start := time.Now()
	result, errGen := s.gen.Music(c.Request.Context(), body.APIKey, generate.MusicParams{
		Provider: body.Provider,
		Genre:    body.Genre,
		Mood:     body.Mood,
		Duration: body.Duration,
		Quote:    body.Quote,
	})
	s.recordGeneration("music", result.Tokens, time.Since(start), errGen)
	if errGen != nil {
		s.writeGenerationError(c, errGen)
		return
	}
	c.JSON(http.StatusOK, result)
}

// generateVideoRequest is the video endpoint payload.
type generateVideoRequest struct {
	Provider      string `json:"provider"`
	Style         string `json:"style"`
	Quote         string `json:"quote"`
	BackgroundURL string `json:"backgroundUrl"`
	MusicURL      string `json:"musicUrl"`
	Quality       string `json:"quality"`
	Duration      int    `json:"duration"`
	APIKey        string `json:"apiKey"`
}

func (s *Server) generateVideo(c *gin.Context) {
	var body generateVideoRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Provider) == "" || strings.TrimSpace(body.Style) == "" ||
		strings.TrimSpace(body.Quote) == "" || strings.TrimSpace(body.Quality) == "" || body.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider, style, quote, quality, and duration are required"})
		return
	}

	start := time.Now()
	result, errGen := s.gen.Video(c.Request.Context(), body.APIKey, generate.VideoParams{
		Provider:      body.Provider,
		Style:         body.Style,
		Quote:         body.Quote,
		BackgroundURL: body.BackgroundURL,
		MusicURL:      body.MusicURL,
		Quality:       body.Quality,
		Duration:      body.Duration,
	})
	s.recordGeneration("video", result.Tokens, time.Since(start), errGen)
	if errGen != nil {
		s.writeGenerationError(c, errGen)
		return
	}
	c.JSON(http.StatusOK, result)
}

// recordGeneration writes one usage row for a generation attempt.
func (s *Server) recordGeneration(capability string, tokens anthropic.Usage, elapsed time.Duration, errGen error) {
	s.usage.Record(context.Background(), usage.Call{
		Capability:   capability,
		Provider:     "anthropic",
		Model:        s.model,
		InputTokens:  tokens.InputTokens,
		OutputTokens: tokens.OutputTokens,
		Duration:     elapsed,
		Success:      errGen == nil,
	})
}

// writeGenerationError maps a generation failure to a response.
// Provider auth failures are 401, exhausted credits 402, throttling
// 429, and anything else 500.
func (s *Server) writeGenerationError(c *gin.Context, errGen error) {
	apiErr, ok := errGen.(*anthropic.APIError)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errGen.Error()})
		return
	}

	lower := strings.ToLower(apiErr.Message)
	switch {
	case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key. Please check your Claude API key."})
	case apiErr.StatusCode == http.StatusBadRequest && strings.Contains(lower, "credit balance"):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient credits. Add credits to your provider account and retry."})
	case apiErr.StatusCode == http.StatusTooManyRequests:
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limited by the provider. Try again shortly."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": apiErr.Message})
	}
}
