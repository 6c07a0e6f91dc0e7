package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/quoteforge/quoteforge/internal/config"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()
	now := time.Unix(1000, 0)

	for i := 0; i < 3; i++ {
		result, errAllow := l.Allow(ctx, "validate:anthropic:1.2.3.4", 3, now)
		if errAllow != nil {
			t.Fatalf("allow: %v", errAllow)
		}
		if !result.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if result.Remaining != 3-i-1 {
			t.Fatalf("request %d: expected remaining=%d, got %d", i+1, 3-i-1, result.Remaining)
		}
	}

	result, _ := l.Allow(ctx, "validate:anthropic:1.2.3.4", 3, now)
	if result.Allowed {
		t.Fatal("fourth request in the same second should be denied")
	}

	// New window resets the counter.
	result, _ = l.Allow(ctx, "validate:anthropic:1.2.3.4", 3, now.Add(time.Second))
	if !result.Allowed {
		t.Fatal("request in the next second should be allowed")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()
	now := time.Unix(1000, 0)

	if result, _ := l.Allow(ctx, "validate:anthropic:1.2.3.4", 1, now); !result.Allowed {
		t.Fatal("first key should be allowed")
	}
	if result, _ := l.Allow(ctx, "validate:zai:1.2.3.4", 1, now); !result.Allowed {
		t.Fatal("second key should have its own budget")
	}
}

func TestManager_ZeroLimitDisables(t *testing.T) {
	m := NewManager(config.ResolvedRateLimit{Limit: 0}, nil, nil)
	for i := 0; i < 100; i++ {
		result, errAllow := m.Allow(context.Background(), "validate:anthropic:1.2.3.4")
		if errAllow != nil || !result.Allowed {
			t.Fatalf("zero limit must allow everything, got %+v err=%v", result, errAllow)
		}
	}
}

func TestManager_MemoryFallbackEnforcesLimit(t *testing.T) {
	now := time.Unix(2000, 0)
	m := NewManager(config.ResolvedRateLimit{Limit: 2}, func() time.Time { return now }, nil)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if result, _ := m.Allow(ctx, "k"); !result.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if result, _ := m.Allow(ctx, "k"); result.Allowed {
		t.Fatal("third request should be denied")
	}
}

func TestManager_RedisFailureFallsBackToMemory(t *testing.T) {
	// Redis is enabled but unreachable; the breaker must trip and the
	// memory limiter take over without surfacing an error.
	m := NewManager(config.ResolvedRateLimit{
		Limit:        1,
		RedisEnabled: true,
		RedisAddr:    "127.0.0.1:1", // nothing listens here
		RedisPrefix:  "qf:rl",
	}, nil, nil)

	result, errAllow := m.Allow(context.Background(), "k")
	if errAllow != nil {
		t.Fatalf("fallback must not error: %v", errAllow)
	}
	if !result.Allowed {
		t.Fatal("first request should be allowed via memory fallback")
	}
}

func TestRedisLimiter_WindowKey(t *testing.T) {
	l := NewRedisLimiter(nil, "qf:rl")
	if got := l.windowKey("validate:anthropic:1.2.3.4", 1000); got != "qf:rl:validate:anthropic:1.2.3.4:1000" {
		t.Fatalf("unexpected window key %q", got)
	}
	bare := NewRedisLimiter(nil, "  ")
	if got := bare.windowKey("k", 7); got != "k:7" {
		t.Fatalf("unexpected window key %q", got)
	}
}

func TestRedisLimiter_NilClientAllows(t *testing.T) {
	l := NewRedisLimiter(nil, "qf:rl")
	result, errAllow := l.Allow(context.Background(), "k", 1, time.Unix(1000, 0))
	if errAllow != nil || !result.Allowed {
		t.Fatalf("nil client must allow, got %+v err=%v", result, errAllow)
	}
}

func TestKeyFor(t *testing.T) {
	if got := KeyFor("validate", "Anthropic", "1.2.3.4"); got != "validate:anthropic:1.2.3.4" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := KeyFor("validate", "", "1.2.3.4"); got != "validate:1.2.3.4" {
		t.Fatalf("unexpected key %q", got)
	}
	if KeyFor("", "anthropic", "1.2.3.4") != "" || KeyFor("validate", "anthropic", "") != "" {
		t.Fatal("missing endpoint or client must yield an empty key")
	}
}
