// Package keycheck inspects candidate API keys before any network call.
package keycheck

import (
	"strings"

	"github.com/quoteforge/quoteforge/internal/catalog"
)

// Key prefixes of the two common ecosystems.
const (
	anthropicPrefix = "sk-ant-"
	openAIPrefix    = "sk-"
)

// Result is the outcome of a static inspection of one candidate key.
// It is derived from the string alone; no network is involved.
type Result struct {
	IsEmpty                 bool `json:"isEmpty"`
	HasLeadingTrailingSpace bool `json:"hasLeadingTrailingSpaces"`
	HasInvalidChars         bool `json:"hasInvalidChars"`
	LooksLikeOpenAI         bool `json:"looksLikeOpenAI"`
	LooksLikeBearer         bool `json:"looksLikeBearer"`
	MatchesExpectedPrefix   bool `json:"matchesExpectedPrefix"`
	Length                  int  `json:"length"`
}

// Clean reports whether the candidate passed every surface check that
// should block a live probe.
func (r Result) Clean() bool {
	return !r.IsEmpty && !r.HasLeadingTrailingSpace && !r.HasInvalidChars
}

// Check inspects a candidate key for the given provider. Pure and
// side-effect free: identical inputs always yield identical results.
func Check(candidate, providerID string) Result {
	if len(candidate) == 0 {
		return Result{IsEmpty: true}
	}

	trimmed := strings.TrimSpace(candidate)
	result := Result{
		IsEmpty:                 len(trimmed) == 0,
		HasLeadingTrailingSpace: candidate != trimmed,
		HasInvalidChars:         hasNonPrintable(candidate),
		LooksLikeBearer:         strings.HasPrefix(strings.ToLower(trimmed), "bearer "),
		Length:                  len(candidate),
	}
	if result.IsEmpty {
		return Result{IsEmpty: true, HasLeadingTrailingSpace: true, Length: len(candidate)}
	}

	if catalog.ClaudeCompatible(providerID) {
		result.MatchesExpectedPrefix = strings.HasPrefix(trimmed, anthropicPrefix)
		result.LooksLikeOpenAI = strings.HasPrefix(trimmed, openAIPrefix) && !result.MatchesExpectedPrefix
	}
	return result
}

// hasNonPrintable reports whether the string contains bytes outside the
// printable ASCII range 0x20..0x7E.
func hasNonPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return true
		}
	}
	return false
}
