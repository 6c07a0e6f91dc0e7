package keycheck

import "testing"

func TestCheck_EmptyCandidate(t *testing.T) {
	result := Check("", "anthropic")
	if !result.IsEmpty {
		t.Fatal("expected IsEmpty=true")
	}
	if result.HasLeadingTrailingSpace || result.HasInvalidChars || result.LooksLikeOpenAI || result.MatchesExpectedPrefix {
		t.Fatalf("expected all other flags false, got %+v", result)
	}
	if result.Length != 0 {
		t.Fatalf("expected length=0, got %d", result.Length)
	}
}

func TestCheck_WhitespaceOnlyIsEmpty(t *testing.T) {
	result := Check("   ", "anthropic")
	if !result.IsEmpty {
		t.Fatal("expected IsEmpty=true for whitespace-only candidate")
	}
	if !result.HasLeadingTrailingSpace {
		t.Fatal("expected HasLeadingTrailingSpace=true for whitespace-only candidate")
	}
}

func TestCheck_OpenAIStyleKeyAgainstAnthropic(t *testing.T) {
	result := Check("sk-abc123", "anthropic")
	if !result.LooksLikeOpenAI {
		t.Fatal("expected LooksLikeOpenAI=true")
	}
	if result.MatchesExpectedPrefix {
		t.Fatal("expected MatchesExpectedPrefix=false")
	}
}

func TestCheck_AnthropicPrefix(t *testing.T) {
	result := Check("sk-ant-abc123", "anthropic")
	if !result.MatchesExpectedPrefix {
		t.Fatal("expected MatchesExpectedPrefix=true")
	}
	if result.LooksLikeOpenAI {
		t.Fatal("expected LooksLikeOpenAI=false")
	}
	if !result.Clean() {
		t.Fatal("expected candidate to be surface-clean")
	}
}

func TestCheck_LeadingTrailingWhitespace(t *testing.T) {
	result := Check(" sk-ant-abc ", "anthropic")
	if !result.HasLeadingTrailingSpace {
		t.Fatal("expected HasLeadingTrailingSpace=true")
	}
	// The prefix check runs on the trimmed candidate.
	if !result.MatchesExpectedPrefix {
		t.Fatal("expected MatchesExpectedPrefix=true on trimmed candidate")
	}
	if result.Clean() {
		t.Fatal("expected candidate to not be surface-clean")
	}
}

func TestCheck_NonPrintableChars(t *testing.T) {
	result := Check("sk-ant-abc\n123", "anthropic")
	if !result.HasInvalidChars {
		t.Fatal("expected HasInvalidChars=true for embedded newline")
	}
	if !Check("sk-ant-abcé", "anthropic").HasInvalidChars {
		t.Fatal("expected HasInvalidChars=true for non-ASCII byte")
	}
}

func TestCheck_BearerPrefix(t *testing.T) {
	if !Check("Bearer sk-ant-abc", "anthropic").LooksLikeBearer {
		t.Fatal("expected LooksLikeBearer=true")
	}
}

func TestCheck_NonClaudeProviderSkipsPrefixChecks(t *testing.T) {
	result := Check("sk-abc123", "stability")
	if result.LooksLikeOpenAI || result.MatchesExpectedPrefix {
		t.Fatalf("expected prefix flags false for non-claude provider, got %+v", result)
	}
}

func TestCheck_Deterministic(t *testing.T) {
	first := Check("sk-ant-same", "anthropic")
	second := Check("sk-ant-same", "anthropic")
	if first != second {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}
