package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/quoteforge/quoteforge/internal/anthropic"
)

func fakeProvider(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestProbe_Valid(t *testing.T) {
	var calls int32
	server := fakeProvider(t, http.StatusOK,
		`{"id":"msg_1","content":[{"type":"text","text":"Hello"}],"usage":{"input_tokens":1,"output_tokens":1}}`, &calls)
	defer server.Close()

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	verdict := p.Probe(context.Background(), "sk-ant-test", "anthropic")
	if verdict.Status != StatusValid {
		t.Fatalf("expected valid, got %+v", verdict)
	}
	if !verdict.OK() {
		t.Fatal("expected OK verdict")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one outbound call, got %d", calls)
	}
}

func TestProbe_Unauthorized(t *testing.T) {
	server := fakeProvider(t, http.StatusUnauthorized,
		`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`, nil)
	defer server.Close()

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	verdict := p.Probe(context.Background(), "sk-ant-bad", "anthropic")
	if verdict.Status != StatusInvalid {
		t.Fatalf("expected invalid, got %+v", verdict)
	}
	if verdict.Suggestion == "" {
		t.Fatal("expected a corrective suggestion")
	}
	if verdict.RawErrorCode != http.StatusUnauthorized {
		t.Fatalf("expected raw code 401, got %d", verdict.RawErrorCode)
	}
}

func TestProbe_CreditBalance(t *testing.T) {
	server := fakeProvider(t, http.StatusBadRequest,
		`{"type":"error","error":{"type":"invalid_request_error","message":"Your credit balance is too low to access the Anthropic API."}}`, nil)
	defer server.Close()

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	verdict := p.Probe(context.Background(), "sk-ant-broke", "anthropic")
	if verdict.Status != StatusValidWithWarning {
		t.Fatalf("expected valid-with-warning, got %+v", verdict)
	}
	if !verdict.OK() {
		t.Fatal("expected warning verdict to still count as usable")
	}
}

func TestProbe_RateLimited(t *testing.T) {
	server := fakeProvider(t, http.StatusTooManyRequests,
		`{"type":"error","error":{"type":"rate_limit_error","message":"Number of requests has exceeded your rate limit"}}`, nil)
	defer server.Close()

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	verdict := p.Probe(context.Background(), "sk-ant-busy", "anthropic")
	if verdict.Status != StatusRateLimited {
		t.Fatalf("expected rate-limited, got %+v", verdict)
	}
}

func TestProbe_QuotaMessageWithoutStatus429(t *testing.T) {
	server := fakeProvider(t, http.StatusServiceUnavailable,
		`{"type":"error","error":{"type":"overloaded_error","message":"organization quota exceeded"}}`, nil)
	defer server.Close()

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	verdict := p.Probe(context.Background(), "sk-ant-q", "anthropic")
	if verdict.Status != StatusRateLimited {
		t.Fatalf("expected rate-limited from quota message, got %+v", verdict)
	}
}

func TestProbe_OtherErrorPassesRawMessage(t *testing.T) {
	server := fakeProvider(t, http.StatusInternalServerError,
		`{"type":"error","error":{"type":"api_error","message":"internal server error"}}`, nil)
	defer server.Close()

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	verdict := p.Probe(context.Background(), "sk-ant-x", "anthropic")
	if verdict.Status != StatusInvalid {
		t.Fatalf("expected invalid, got %+v", verdict)
	}
	if verdict.Message != "internal server error" {
		t.Fatalf("expected raw provider message, got %q", verdict.Message)
	}
}

func TestProbe_UnsupportedProvider(t *testing.T) {
	var calls int32
	server := fakeProvider(t, http.StatusOK, `{}`, &calls)
	defer server.Close()

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	verdict := p.Probe(context.Background(), "some-key", "stability")
	if verdict.Status != StatusInvalid {
		t.Fatalf("expected invalid for unsupported provider, got %+v", verdict)
	}
	if calls != 0 {
		t.Fatalf("expected no outbound call, got %d", calls)
	}
}

func TestProbe_TransportError(t *testing.T) {
	server := fakeProvider(t, http.StatusOK, `{}`, nil)
	server.Close() // connection refused from here on

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	verdict := p.Probe(context.Background(), "sk-ant-x", "anthropic")
	if verdict.Status != StatusInvalid {
		t.Fatalf("expected invalid on transport error, got %+v", verdict)
	}
	if verdict.Message == "" {
		t.Fatal("expected transport error detail in message")
	}
}

func TestDebug_NeverFailsHard(t *testing.T) {
	server := fakeProvider(t, http.StatusUnauthorized,
		`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`, nil)
	defer server.Close()

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	report := p.Debug(context.Background(), "sk-ant-0123456789abcdef", "anthropic")
	if report.Success {
		t.Fatal("expected failure report")
	}
	if report.StatusCode != http.StatusUnauthorized || report.ErrorType != "authentication_error" {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.KeyPrefix != "sk-ant-012..." {
		t.Fatalf("expected truncated key prefix, got %q", report.KeyPrefix)
	}
	if report.KeyLength != len("sk-ant-0123456789abcdef") {
		t.Fatalf("unexpected key length %d", report.KeyLength)
	}
}

func TestDebug_Success(t *testing.T) {
	server := fakeProvider(t, http.StatusOK,
		`{"id":"msg_1","content":[{"type":"text","text":"pong"}]}`, nil)
	defer server.Close()

	p := New(anthropic.NewClient(anthropic.WithBaseURL(server.URL)))
	report := p.Debug(context.Background(), "sk-ant-ok", "anthropic")
	if !report.Success || report.Message != "pong" {
		t.Fatalf("unexpected report %+v", report)
	}
}
