package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/quoteforge/quoteforge/internal/anthropic"
)

func TestExtractQuote_EmbeddedJSON(t *testing.T) {
	raw := "Here you go:\n{\"quote\": \"To think is to become.\", \"attribution\": \"Marcus Aurelius\"}\nEnjoy!"
	result := extractQuote(raw, "")
	if result.Quote != "To think is to become." {
		t.Fatalf("unexpected quote %q", result.Quote)
	}
	if result.Attribution != "Marcus Aurelius" {
		t.Fatalf("unexpected attribution %q", result.Attribution)
	}
}

func TestExtractQuote_WholeResponseJSON(t *testing.T) {
	raw := `{"quote": "Doubt is the seed of knowing.", "attribution": "Descartes"}`
	result := extractQuote(raw, "")
	if result.Quote != "Doubt is the seed of knowing." || result.Attribution != "Descartes" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestExtractQuote_PlainTextFallback(t *testing.T) {
	result := extractQuote(`"The unexamined prompt is not worth running."`, "Socrates")
	if result.Quote != "The unexamined prompt is not worth running." {
		t.Fatalf("unexpected quote %q", result.Quote)
	}
	if result.Attribution != "Socrates" {
		t.Fatalf("unexpected attribution %q", result.Attribution)
	}
}

func TestExtractQuote_FallbackAttributionSentinel(t *testing.T) {
	result := extractQuote("Wisdom begins in wonder.", "")
	if result.Attribution != "AI Self-Teaching" {
		t.Fatalf("unexpected attribution %q", result.Attribution)
	}
}

func TestExtractQuote_MalformedJSONFallsThrough(t *testing.T) {
	result := extractQuote(`{"quote": "broken`, "Kant")
	if result.Quote == "" {
		t.Fatal("fallback must always produce a quote")
	}
	if result.Attribution != "Kant" {
		t.Fatalf("unexpected attribution %q", result.Attribution)
	}
}

func TestQuoteTemperature(t *testing.T) {
	if got := quoteTemperature("creative"); got != 0.95 {
		t.Fatalf("creative: got %v", got)
	}
	if got := quoteTemperature("analytical"); got != 0.4 {
		t.Fatalf("analytical: got %v", got)
	}
	if got := quoteTemperature("balanced"); got != 0.8 {
		t.Fatalf("balanced: got %v", got)
	}
	if got := quoteTemperature("no-such-style"); got != 0.8 {
		t.Fatalf("unknown style must use the default, got %v", got)
	}
}

func TestPrompts_UnknownEnumsNeverError(t *testing.T) {
	system := quoteSystemPrompt("", "no-such-type", "no-such-style")
	if system == "" {
		t.Fatal("expected a non-empty system prompt")
	}
	if !strings.Contains(musicPrompt("polka", "giddy", 30, ""), "30 seconds") {
		t.Fatal("expected duration clause for unknown genre/mood")
	}
	if !strings.Contains(videoPrompt("no-such-style", "q", "", "", "hd", 45), "45 seconds") {
		t.Fatal("expected duration clause for unknown style")
	}
}

func TestQuote_EndToEnd(t *testing.T) {
	var gotReq anthropic.MessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if errDecode := json.NewDecoder(r.Body).Decode(&gotReq); errDecode != nil {
			t.Errorf("decode request: %v", errDecode)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","content":[{"type":"text","text":"{\"quote\": \"Stillness speaks.\", \"attribution\": \"Laozi\"}"}]}`))
	}))
	defer server.Close()

	s := NewService(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	result, errGen := s.Quote(context.Background(), "sk-ant-test", QuoteParams{
		Idea:        "stillness",
		Philosopher: "Laozi",
		QuoteType:   "philosophical",
		PromptStyle: "creative",
	})
	if errGen != nil {
		t.Fatalf("Quote: %v", errGen)
	}
	if result.Quote != "Stillness speaks." || result.Attribution != "Laozi" {
		t.Fatalf("unexpected result %+v", result)
	}
	if gotReq.MaxTokens != 150 {
		t.Fatalf("expected max_tokens=150, got %d", gotReq.MaxTokens)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0.95 {
		t.Fatalf("expected creative temperature 0.95, got %v", gotReq.Temperature)
	}
	if !strings.Contains(gotReq.System, "style of Laozi") {
		t.Fatal("expected philosopher clause in the system prompt")
	}
}

func TestQuote_MissingIdea(t *testing.T) {
	s := NewService(anthropic.NewClient())
	if _, errGen := s.Quote(context.Background(), "sk-ant-x", QuoteParams{}); errGen == nil {
		t.Fatal("expected error for missing idea")
	}
}

func TestMusic_SynthesizedAssetID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","content":[{"type":"text","text":"Slow ambient pads in D minor."}]}`))
	}))
	defer server.Close()

	s := NewService(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	result, errGen := s.Music(context.Background(), "sk-ant-test", MusicParams{
		Provider: "anthropic", Genre: "ambient", Mood: "peaceful", Duration: 60,
	})
	if errGen != nil {
		t.Fatalf("Music: %v", errGen)
	}
	if result.MusicURL != "generated-music-1700000000000.mp3" {
		t.Fatalf("unexpected asset id %q", result.MusicURL)
	}
	if result.MusicDescription != "Slow ambient pads in D minor." {
		t.Fatalf("unexpected description %q", result.MusicDescription)
	}
}

func TestBackground_DataURIPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","content":[{"type":"text","text":"data:image/png;base64,aGVsbG8="}]}`))
	}))
	defer server.Close()

	s := NewService(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	result, errGen := s.Background(context.Background(), "sk-ant-test", BackgroundParams{
		Provider: "anthropic", Style: "minimalist",
	})
	if errGen != nil {
		t.Fatalf("Background: %v", errGen)
	}
	if result.ImageURL != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("expected data URI passthrough, got %q", result.ImageURL)
	}
}

func TestVideo_RequiredFields(t *testing.T) {
	s := NewService(anthropic.NewClient())
	_, errGen := s.Video(context.Background(), "sk-ant-x", VideoParams{Provider: "anthropic"})
	if errGen == nil {
		t.Fatal("expected error for missing required fields")
	}
}

func TestVideo_ProviderErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	s := NewService(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	_, errGen := s.Video(context.Background(), "sk-ant-bad", VideoParams{
		Provider: "anthropic", Style: "cinematic", Quote: "q", Quality: "hd", Duration: 30,
	})
	apiErr, ok := errGen.(*anthropic.APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", errGen)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", apiErr.StatusCode)
	}
}
