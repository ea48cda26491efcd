package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestRequestLogger_AssignsRequestID(t *testing.T) {
	logger := &captureLogger{}
	var seen map[string]any
	handler := requestLogger(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.ContextFields(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	id := rec.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatalf("expected generated request id")
	}
	if seen["request_id"] != id {
		t.Fatalf("expected context request_id %q got %v", id, seen["request_id"])
	}

	entry := logger.last()
	if entry.msg != "http.request" {
		t.Fatalf("expected http.request entry got %q", entry.msg)
	}
	if entry.fields["status"] != http.StatusTeapot {
		t.Fatalf("expected status %d got %v", http.StatusTeapot, entry.fields["status"])
	}
	if entry.fields["path"] != "/posts" || entry.fields["method"] != http.MethodGet {
		t.Fatalf("unexpected request fields %v", entry.fields)
	}
	if entry.ctx["request_id"] != id {
		t.Fatalf("expected logger context to carry request id")
	}
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	handler := requestLogger(nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1234")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "req-1234" {
		t.Fatalf("expected echoed request id got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

type captureEntry struct {
	msg    string
	fields map[string]any
	ctx    map[string]any
}

type captureLogger struct {
	mu      sync.Mutex
	ctx     map[string]any
	entries *[]captureEntry
}

var _ interfaces.Logger = (*captureLogger)(nil)

func (c *captureLogger) record(msg string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = &[]captureEntry{}
	}
	fields := map[string]any{}
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			fields[key] = args[i+1]
		}
	}
	*c.entries = append(*c.entries, captureEntry{msg: msg, fields: fields, ctx: c.ctx})
}

func (c *captureLogger) last() captureEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil || len(*c.entries) == 0 {
		return captureEntry{}
	}
	entries := *c.entries
	return entries[len(entries)-1]
}

func (c *captureLogger) Trace(msg string, args ...any) { c.record(msg, args...) }
func (c *captureLogger) Debug(msg string, args ...any) { c.record(msg, args...) }
func (c *captureLogger) Info(msg string, args ...any)  { c.record(msg, args...) }
func (c *captureLogger) Warn(msg string, args ...any)  { c.record(msg, args...) }
func (c *captureLogger) Error(msg string, args ...any) { c.record(msg, args...) }
func (c *captureLogger) Fatal(msg string, args ...any) { c.record(msg, args...) }

func (c *captureLogger) WithContext(ctx context.Context) interfaces.Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = &[]captureEntry{}
	}
	return &captureLogger{ctx: logging.ContextFields(ctx), entries: c.entries}
}
