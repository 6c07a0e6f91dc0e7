package catalog

import "testing"

func TestNew_UniqueIDs(t *testing.T) {
	c := New()
	seen := make(map[string]struct{})
	for _, d := range c.Filter("", "") {
		if _, dup := seen[d.ID]; dup {
			t.Fatalf("duplicate provider id %q", d.ID)
		}
		seen[d.ID] = struct{}{}
		if d.Category == "" || d.CostTier == "" {
			t.Fatalf("provider %q missing category or cost tier", d.ID)
		}
	}
	if len(seen) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
}

func TestFilter_ByCategoryAndCostTier(t *testing.T) {
	c := New()

	text := c.Filter(CategoryText, "")
	if len(text) == 0 {
		t.Fatal("expected text providers")
	}
	for _, d := range text {
		if d.Category != CategoryText {
			t.Fatalf("expected category=text, got %q for %q", d.Category, d.ID)
		}
	}

	freeVideo := c.Filter(CategoryVideo, CostTierFree)
	for _, d := range freeVideo {
		if d.CostTier != CostTierFree {
			t.Fatalf("expected cost tier=free, got %q for %q", d.CostTier, d.ID)
		}
	}

	all := c.Filter("all", "all")
	if len(all) != len(c.Filter("", "")) {
		t.Fatal("expected 'all' to match everything")
	}
}

func TestGet_NormalizesInput(t *testing.T) {
	c := New()
	d, ok := c.Get("  Anthropic ")
	if !ok {
		t.Fatal("expected anthropic descriptor")
	}
	if d.ID != "anthropic" {
		t.Fatalf("expected id=anthropic, got %q", d.ID)
	}
}

func TestClaudeCompatible(t *testing.T) {
	if !ClaudeCompatible("anthropic") || !ClaudeCompatible("zai") {
		t.Fatal("expected anthropic and zai to be claude-compatible")
	}
	if ClaudeCompatible("openai") {
		t.Fatal("expected openai to not be claude-compatible")
	}
}

func TestCategories_GroupsAll(t *testing.T) {
	c := New()
	grouped := c.Categories("")
	total := 0
	for _, descriptors := range grouped {
		total += len(descriptors)
	}
	if total != len(c.Filter("", "")) {
		t.Fatalf("expected grouped total=%d, got %d", len(c.Filter("", "")), total)
	}
}
