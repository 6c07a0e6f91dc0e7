// Package validation orchestrates key checks: a free format pass first,
// then a live probe, then an optional diagnostic cascade.
package validation

import (
	"context"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/quoteforge/quoteforge/internal/keycheck"
	"github.com/quoteforge/quoteforge/internal/probe"
)

// Prober is the live-check dependency of the orchestrator.
type Prober interface {
	Probe(ctx context.Context, candidate, providerID string) probe.Verdict
	Debug(ctx context.Context, candidate, providerID string) probe.DebugReport
}

// Result is a single validation outcome, combining the surface checks
// with the live verdict.
type Result struct {
	Valid        bool            `json:"valid"`
	Status       string          `json:"status"`
	Message      string          `json:"message,omitempty"`
	Warning      string          `json:"warning,omitempty"`
	Suggestion   string          `json:"suggestion,omitempty"`
	Response     string          `json:"response,omitempty"`
	FormatChecks keycheck.Result `json:"formatChecks"`
}

// Orchestrator validates candidate keys. A new attempt for a provider
// fully replaces the prior cached verdict; stale in-flight attempts
// never overwrite newer ones.
type Orchestrator struct {
	prober   Prober
	debounce *Debouncer

	mu      sync.Mutex
	seq     map[string]uint64
	results map[string]Result
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithDebounceWindow overrides the default debounce window.
func WithDebounceWindow(window time.Duration) Option {
	return func(o *Orchestrator) {
		if window > 0 {
			o.debounce = NewDebouncer(window)
		}
	}
}

// New builds an orchestrator on the given prober.
func New(prober Prober, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		prober:   prober,
		debounce: NewDebouncer(time.Second),
		seq:      make(map[string]uint64),
		results:  make(map[string]Result),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CheckFormat runs only the surface checks, with no network cost.
func (o *Orchestrator) CheckFormat(candidate, providerID string) Result {
	checks := keycheck.Check(candidate, providerID)
	result := Result{FormatChecks: checks}

	switch {
	case checks.IsEmpty:
		result.Status = probe.StatusInvalid
		result.Message = "API key is empty"
	case checks.HasLeadingTrailingSpace:
		result.Status = probe.StatusInvalid
		result.Message = "API key has leading or trailing whitespace"
		result.Suggestion = "Remove the surrounding whitespace and try again"
	case checks.HasInvalidChars:
		result.Status = probe.StatusInvalid
		result.Message = "API key contains invalid characters"
		result.Suggestion = "Re-copy the key; it may have picked up hidden characters"
	case checks.LooksLikeBearer:
		result.Status = probe.StatusInvalid
		result.Message = "API key should not include a Bearer prefix"
		result.Suggestion = "Paste only the key itself, without \"Bearer \""
	case checks.LooksLikeOpenAI:
		result.Status = probe.StatusInvalid
		result.Message = "this looks like an OpenAI key, not an Anthropic one"
		result.Suggestion = "Anthropic keys start with sk-ant-, see https://console.anthropic.com/settings/keys"
	default:
		result.Valid = true
		result.Status = probe.StatusValid
		result.Message = "API key format looks good"
	}
	return result
}

// Validate runs the full pipeline for one candidate. Format failures
// return immediately without touching the network. On an invalid live
// verdict the diagnostic probe runs once and its detail is appended to
// the message; the primary status is never overridden by it.
func (o *Orchestrator) Validate(ctx context.Context, candidate, providerID string) Result {
	attempt := o.begin(providerID)

	// An emptied key resets the verdict rather than reporting an error.
	if strings.TrimSpace(candidate) == "" {
		result := Result{Status: probe.StatusUnknown, FormatChecks: keycheck.Check(candidate, providerID)}
		o.finish(providerID, attempt, result)
		return result
	}

	formatResult := o.CheckFormat(candidate, providerID)
	if !formatResult.FormatChecks.Clean() || !formatResult.Valid {
		o.finish(providerID, attempt, formatResult)
		return formatResult
	}

	verdict := o.prober.Probe(ctx, candidate, providerID)
	result := fromVerdict(verdict, formatResult.FormatChecks)

	if verdict.Status == probe.StatusInvalid {
		report := o.prober.Debug(ctx, candidate, providerID)
		if report.Success {
			result.Message += " (debug probe: provider responded normally)"
		} else {
			result.Message += " (debug probe also failed: " + report.Message + ")"
		}
	}

	o.finish(providerID, attempt, result)
	return result
}

// ValidateDebounced schedules a validation run after the debounce
// window elapses. Within the window only the last scheduled call per
// provider fires; other providers are unaffected. fn receives the
// completed result.
func (o *Orchestrator) ValidateDebounced(candidate, providerID string, fn func(Result)) {
	o.debounce.Schedule(providerID, func() {
		result := o.Validate(context.Background(), candidate, providerID)
		if fn != nil {
			fn(result)
		}
	})
}

// Last returns the most recent completed result for a provider.
func (o *Orchestrator) Last(providerID string) (Result, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	result, ok := o.results[normalize(providerID)]
	return result, ok
}

func fromVerdict(v probe.Verdict, checks keycheck.Result) Result {
	result := Result{
		Valid:        v.OK(),
		Status:       v.Status,
		Suggestion:   v.Suggestion,
		Response:     v.Response,
		FormatChecks: checks,
	}
	switch v.Status {
	case probe.StatusValidWithWarning:
		result.Message = "API key is valid"
		result.Warning = v.Message
	case probe.StatusRateLimited:
		// Throttled keys are usable; surface the throttle as a warning.
		result.Valid = true
		result.Message = "API key is valid"
		result.Warning = v.Message
	default:
		result.Message = v.Message
	}
	return result
}

func (o *Orchestrator) begin(providerID string) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	key := normalize(providerID)
	o.seq[key]++
	return o.seq[key]
}

// finish records the result unless a newer attempt for the same
// provider has already started. Last write wins per provider.
func (o *Orchestrator) finish(providerID string, attempt uint64, result Result) {
	o.mu.Lock()
	defer o.mu.Unlock()
	key := normalize(providerID)
	if attempt < o.seq[key] {
		log.Debugf("discarding stale validation attempt %d for provider %s", attempt, key)
		return
	}
	o.results[key] = result
}

func normalize(providerID string) string {
	return strings.ToLower(strings.TrimSpace(providerID))
}
