// Package probe issues minimal live requests against a provider to
// classify whether a candidate API key works.
package probe

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/quoteforge/quoteforge/internal/anthropic"
	"github.com/quoteforge/quoteforge/internal/catalog"
)

// Verdict statuses.
const (
	StatusValid            = "valid"
	StatusValidWithWarning = "valid-with-warning"
	StatusInvalid          = "invalid"
	StatusRateLimited      = "rate-limited"
	StatusUnknown          = "unknown"
)

const consoleSuggestion = "Check your key at https://console.anthropic.com/settings/keys"

// Verdict is the classified outcome of testing a key against a provider.
type Verdict struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Suggestion   string `json:"suggestion,omitempty"`
	RawErrorCode int    `json:"rawErrorCode,omitempty"`
	Response     string `json:"response,omitempty"` // Provider reply on success.
}

// OK reports whether the verdict allows the key to be used.
func (v Verdict) OK() bool {
	return v.Status == StatusValid || v.Status == StatusValidWithWarning
}

// Prober runs live key checks against one Anthropic-compatible endpoint.
type Prober struct {
	client *anthropic.Client
}

// New builds a Prober on the given client.
func New(client *anthropic.Client) *Prober {
	return &Prober{client: client}
}

// Probe sends one tiny completion request authenticated with the
// candidate key and classifies the outcome. It performs exactly one
// outbound call, never retries, and never returns an error: every
// failure mode is folded into the verdict.
func (p *Prober) Probe(ctx context.Context, candidate, providerID string) Verdict {
	if !catalog.ClaudeCompatible(providerID) {
		return Verdict{
			Status:  StatusInvalid,
			Message: "live validation is not supported for provider " + strings.TrimSpace(providerID),
		}
	}

	resp, errCall := p.client.CreateMessage(ctx, candidate, anthropic.MessageRequest{
		MaxTokens: 10,
		Messages:  []anthropic.Message{{Role: "user", Content: "Hi"}},
	})
	if errCall != nil {
		return Classify(errCall)
	}
	if resp.Text() == "" {
		return Verdict{Status: StatusUnknown, Message: "provider returned an empty response"}
	}
	return Verdict{Status: StatusValid, Message: "API key is valid", Response: resp.Text()}
}

// Classify maps a provider call error to a verdict. Exported so the
// generation layer can reuse the same taxonomy.
func Classify(errCall error) Verdict {
	apiErr, ok := errCall.(*anthropic.APIError)
	if !ok {
		return Verdict{Status: StatusInvalid, Message: errCall.Error()}
	}

	lower := strings.ToLower(apiErr.Message)
	switch {
	case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
		return Verdict{
			Status:       StatusInvalid,
			Message:      "API key was rejected by the provider",
			Suggestion:   consoleSuggestion,
			RawErrorCode: apiErr.StatusCode,
		}
	case apiErr.StatusCode == 400 && strings.Contains(lower, "credit balance"):
		return Verdict{
			Status:       StatusValidWithWarning,
			Message:      "API key is valid but the account has insufficient credits",
			Suggestion:   "Add credits at https://console.anthropic.com/settings/billing",
			RawErrorCode: apiErr.StatusCode,
		}
	case apiErr.StatusCode == 429 || strings.Contains(lower, "rate limit") || strings.Contains(lower, "quota"):
		return Verdict{
			Status:       StatusRateLimited,
			Message:      "API key is valid but currently rate limited, try again shortly",
			RawErrorCode: apiErr.StatusCode,
		}
	default:
		return Verdict{
			Status:       StatusInvalid,
			Message:      apiErr.Message,
			RawErrorCode: apiErr.StatusCode,
		}
	}
}

// DebugReport is the outcome of a diagnostic probe. It always carries a
// success flag instead of failing hard.
type DebugReport struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode,omitempty"`
	ErrorType  string          `json:"errorType,omitempty"`
	Message    string          `json:"message"`
	KeyLength  int             `json:"keyLength"`
	KeyPrefix  string          `json:"keyPrefix"`
	Usage      anthropic.Usage `json:"usage"`
}

// Debug runs the same minimal request as Probe but reports the raw
// outcome for troubleshooting. Only the key's length and first
// characters appear in the report; the key itself is never echoed.
func (p *Prober) Debug(ctx context.Context, candidate, providerID string) DebugReport {
	report := DebugReport{
		KeyLength: len(candidate),
		KeyPrefix: keyPrefix(candidate),
	}
	if !catalog.ClaudeCompatible(providerID) {
		report.Message = "diagnostic probe is not supported for provider " + strings.TrimSpace(providerID)
		return report
	}

	resp, errCall := p.client.CreateMessage(ctx, candidate, anthropic.MessageRequest{
		MaxTokens: 10,
		Messages:  []anthropic.Message{{Role: "user", Content: "Hi"}},
	})
	if errCall != nil {
		if apiErr, ok := errCall.(*anthropic.APIError); ok {
			report.StatusCode = apiErr.StatusCode
			report.ErrorType = apiErr.Type
			report.Message = apiErr.Message
		} else {
			report.Message = errCall.Error()
		}
		log.Debugf("debug probe failed for provider %s (key length %d)", providerID, report.KeyLength)
		return report
	}

	report.Success = true
	report.Message = resp.Text()
	report.Usage = resp.Usage
	return report
}

func keyPrefix(candidate string) string {
	const n = 10
	if len(candidate) <= n {
		return candidate
	}
	return candidate[:n] + "..."
}
