// Package generate proxies one-shot content generation calls to the
// provider. Nothing here is cached or persisted; keys travel only in
// the request that carries them.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/quoteforge/quoteforge/internal/anthropic"
)

// Service runs generation calls against one Anthropic-compatible endpoint.
type Service struct {
	client *anthropic.Client
	now    func() time.Time
}

// NewService builds a generation service on the given client.
func NewService(client *anthropic.Client) *Service {
	return &Service{client: client, now: time.Now}
}

// QuoteParams are the inputs of a quote generation call.
type QuoteParams struct {
	Idea        string `json:"idea"`
	Philosopher string `json:"philosopher"`
	QuoteType   string `json:"quoteType"`
	PromptStyle string `json:"promptStyle"`
}

// QuoteResult is a generated quote with its attribution.
type QuoteResult struct {
	Quote       string          `json:"quote"`
	Attribution string          `json:"attribution"`
	Tokens      anthropic.Usage `json:"-"`
}

// Quote generates a philosophical quote. The provider is asked for a
// JSON object; malformed output is recovered through a layered
// extraction fallback and never surfaces as an error.
func (s *Service) Quote(ctx context.Context, apiKey string, params QuoteParams) (QuoteResult, error) {
	if strings.TrimSpace(params.Idea) == "" {
		return QuoteResult{}, fmt.Errorf("generate: idea is required")
	}

	temperature := quoteTemperature(params.PromptStyle)
	resp, errCall := s.client.CreateMessage(ctx, apiKey, anthropic.MessageRequest{
		MaxTokens:   quoteMaxTokens,
		Temperature: &temperature,
		System:      quoteSystemPrompt(params.Philosopher, params.QuoteType, params.PromptStyle),
		Messages: []anthropic.Message{
			{Role: "user", Content: quoteUserPrompt(params.Idea, params.Philosopher)},
		},
	})
	if errCall != nil {
		return QuoteResult{}, errCall
	}

	raw := resp.Text()
	if raw == "" {
		return QuoteResult{}, fmt.Errorf("generate: provider returned an empty response")
	}
	result := extractQuote(raw, params.Philosopher)
	result.Tokens = resp.Usage
	return result, nil
}

// extractQuote recovers a quote object from free-form provider output.
// Tiers: parse the first {...} span, parse the whole response, then
// fall back to the quote-stripped text itself.
func extractQuote(raw, philosopher string) QuoteResult {
	trimmed := strings.TrimSpace(raw)

	var result QuoteResult
	if start, end := strings.Index(trimmed, "{"), strings.LastIndex(trimmed, "}"); start >= 0 && end > start {
		if errParse := json.Unmarshal([]byte(trimmed[start:end+1]), &result); errParse == nil && result.Quote != "" {
			return withAttribution(result, philosopher)
		}
	}
	if errParse := json.Unmarshal([]byte(trimmed), &result); errParse == nil && result.Quote != "" {
		return withAttribution(result, philosopher)
	}

	return withAttribution(QuoteResult{Quote: strings.Trim(trimmed, `"'`)}, philosopher)
}

func withAttribution(result QuoteResult, philosopher string) QuoteResult {
	if result.Attribution == "" {
		if philosopher != "" {
			result.Attribution = philosopher
		} else {
			result.Attribution = selfTeachingAttribution
		}
	}
	return result
}

// BackgroundParams are the inputs of a background generation call.
type BackgroundParams struct {
	Provider string `json:"provider"`
	Style    string `json:"style"`
	Quote    string `json:"quote"`
}

// BackgroundResult is a generated background reference.
type BackgroundResult struct {
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description,omitempty"`
	Provider    string          `json:"provider"`
	Style       string          `json:"style"`
	Tokens      anthropic.Usage `json:"-"`
}

// Background generates background artwork for a quote. A provider that
// returns a data URI is passed through; otherwise the textual art
// description is wrapped with a synthesized asset id.
func (s *Service) Background(ctx context.Context, apiKey string, params BackgroundParams) (BackgroundResult, error) {
	if params.Provider == "" || params.Style == "" {
		return BackgroundResult{}, fmt.Errorf("generate: provider and style are required")
	}

	temperature := 0.7
	resp, errCall := s.client.CreateMessage(ctx, apiKey, anthropic.MessageRequest{
		MaxTokens:   backgroundMaxTokens,
		Temperature: &temperature,
		System:      backgroundSystemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: backgroundPrompt(params.Style, params.Quote)},
		},
	})
	if errCall != nil {
		return BackgroundResult{}, errCall
	}

	text := resp.Text()
	if text == "" {
		return BackgroundResult{}, fmt.Errorf("generate: failed to generate background image")
	}

	result := BackgroundResult{Provider: params.Provider, Style: params.Style, Tokens: resp.Usage}
	if strings.HasPrefix(text, "data:image/") {
		result.ImageURL = text
		return result, nil
	}
	result.ImageURL = s.assetID("background", "png")
	result.Description = text
	return result, nil
}

// MusicParams are the inputs of a music generation call.
type MusicParams struct {
	Provider string `json:"provider"`
	Genre    string `json:"genre"`
	Mood     string `json:"mood"`
	Duration int    `json:"duration"`
	Quote    string `json:"quote"`
}

// MusicResult is a generated music reference with its description.
type MusicResult struct {
	MusicURL         string          `json:"musicUrl"`
	MusicDescription string          `json:"musicDescription"`
	Provider         string          `json:"provider"`
	Genre            string          `json:"genre"`
	Mood             string          `json:"mood"`
	Duration         int             `json:"duration"`
	Tokens           anthropic.Usage `json:"-"`
}

// Music generates a music composition description for a quote video.
func (s *Service) Music(ctx context.Context, apiKey string, params MusicParams) (MusicResult, error) {
	if params.Provider == "" || params.Genre == "" || params.Mood == "" || params.Duration <= 0 {
		return MusicResult{}, fmt.Errorf("generate: provider, genre, mood, and duration are required")
	}

	temperature, topP, penalty := 0.8, 0.9, 0.5
	resp, errCall := s.client.CreateMessage(ctx, apiKey, anthropic.MessageRequest{
		MaxTokens:        musicMaxTokens,
		Temperature:      &temperature,
		TopP:             &topP,
		FrequencyPenalty: &penalty,
		PresencePenalty:  &penalty,
		System:           musicSystemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: musicPrompt(params.Genre, params.Mood, params.Duration, params.Quote)},
		},
	})
	if errCall != nil {
		return MusicResult{}, errCall
	}

	description := resp.Text()
	if description == "" {
		return MusicResult{}, fmt.Errorf("generate: failed to generate music description")
	}
	return MusicResult{
		MusicURL:         s.assetID("music", "mp3"),
		MusicDescription: description,
		Provider:         params.Provider,
		Genre:            params.Genre,
		Mood:             params.Mood,
		Duration:         params.Duration,
		Tokens:           resp.Usage,
	}, nil
}

// VideoParams are the inputs of a video generation call.
type VideoParams struct {
	Provider      string `json:"provider"`
	Style         string `json:"style"`
	Quote         string `json:"quote"`
	BackgroundURL string `json:"backgroundUrl"`
	MusicURL      string `json:"musicUrl"`
	Quality       string `json:"quality"`
	Duration      int    `json:"duration"`
}

// VideoResult is a generated video reference with its production plan.
type VideoResult struct {
	VideoURL       string          `json:"videoUrl"`
	ProductionPlan string          `json:"productionPlan"`
	Provider       string          `json:"provider"`
	Style          string          `json:"style"`
	Quality        string          `json:"quality"`
	Duration       int             `json:"duration"`
	Quote          string          `json:"quote"`
	Tokens         anthropic.Usage `json:"-"`
}

// Video generates a video production plan for a quote video.
func (s *Service) Video(ctx context.Context, apiKey string, params VideoParams) (VideoResult, error) {
	if params.Provider == "" || params.Style == "" || params.Quote == "" || params.Quality == "" || params.Duration <= 0 {
		return VideoResult{}, fmt.Errorf("generate: provider, style, quote, quality, and duration are required")
	}

	temperature, topP, penalty := 0.7, 0.9, 0.5
	resp, errCall := s.client.CreateMessage(ctx, apiKey, anthropic.MessageRequest{
		MaxTokens:        videoMaxTokens,
		Temperature:      &temperature,
		TopP:             &topP,
		FrequencyPenalty: &penalty,
		PresencePenalty:  &penalty,
		System:           videoSystemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: videoPrompt(params.Style, params.Quote, params.BackgroundURL, params.MusicURL, params.Quality, params.Duration)},
		},
	})
	if errCall != nil {
		return VideoResult{}, errCall
	}

	plan := resp.Text()
	if plan == "" {
		return VideoResult{}, fmt.Errorf("generate: failed to generate video production plan")
	}
	return VideoResult{
		VideoURL:       s.assetID("video", "mp4"),
		ProductionPlan: plan,
		Provider:       params.Provider,
		Style:          params.Style,
		Quality:        params.Quality,
		Duration:       params.Duration,
		Quote:          params.Quote,
		Tokens:         resp.Usage,
	}, nil
}

// assetID synthesizes a stand-in asset reference for capabilities that
// have no real media pipeline behind them yet.
func (s *Service) assetID(capability, ext string) string {
	return fmt.Sprintf("generated-%s-%d.%s", capability, s.now().UnixMilli(), ext)
}
