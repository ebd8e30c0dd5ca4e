// Package security keeps provider credentials out of logs and error responses.
package security

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// RedactedPlaceholder replaces every credential found in log output.
const RedactedPlaceholder = "[REDACTED_KEY]"

// sensitivePatterns contains regex patterns for the credential formats this service handles.
var sensitivePatterns = []*regexp.Regexp{
	// OpenAI keys: sk-..., sk-proj-...
	regexp.MustCompile(`sk-(?:proj-)?[a-zA-Z0-9_-]{20,}`),
	// Azure OpenAI keys: 32 hex chars
	regexp.MustCompile(`\b[a-fA-F0-9]{32}\b`),
	// Authorization and api-key headers echoed in errors
	regexp.MustCompile(`(?i)Bearer\s+[a-zA-Z0-9_.-]{20,}`),
	regexp.MustCompile(`(?i)api-key[:=]\s*[a-zA-Z0-9_-]{16,}`),
	// Generic long alphanumeric strings that look like keys (48+ chars)
	regexp.MustCompile(`[a-zA-Z0-9_-]{48,}`),
}

// sensitiveKeyFragments mark attribute keys whose values are always redacted.
var sensitiveKeyFragments = []string{
	"authorization",
	"api_key",
	"apikey",
	"api-key",
	"secret",
	"password",
	"bearer",
	"credential",
}

// Redact scans a string for sensitive patterns and replaces them.
func Redact(s string) string {
	result := s
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedPlaceholder)
	}
	return result
}

// RedactedHandler wraps an slog.Handler and redacts sensitive data from log records.
type RedactedHandler struct {
	inner slog.Handler
}

// NewRedactedHandler creates a new handler that wraps an existing handler
// and redacts sensitive data from all log output.
func NewRedactedHandler(inner slog.Handler) *RedactedHandler {
	return &RedactedHandler{inner: inner}
}

// Enabled reports whether the handler handles records at the given level.
func (h *RedactedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle processes a log record, redacting sensitive data.
func (h *RedactedHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, Redact(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(redactAttr(a))
		return true
	})

	return h.inner.Handle(ctx, redacted)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *RedactedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &RedactedHandler{inner: h.inner.WithAttrs(redacted)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactedHandler) WithGroup(name string) slog.Handler {
	return &RedactedHandler{inner: h.inner.WithGroup(name)}
}

// redactAttr redacts sensitive data from a single attribute, descending into groups.
func redactAttr(a slog.Attr) slog.Attr {
	if isSensitiveKey(strings.ToLower(a.Key)) {
		return slog.String(a.Key, RedactedPlaceholder)
	}

	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return slog.String(a.Key, Redact(v.String()))
	case slog.KindGroup:
		group := v.Group()
		redacted := make([]any, len(group))
		for i, ga := range group {
			redacted[i] = redactAttr(ga)
		}
		return slog.Group(a.Key, redacted...)
	case slog.KindAny:
		switch x := v.Any().(type) {
		case error:
			return slog.String(a.Key, Redact(x.Error()))
		case []string:
			out := make([]string, len(x))
			for i, s := range x {
				out[i] = Redact(s)
			}
			return slog.Any(a.Key, out)
		}
	}

	return a
}

// isSensitiveKey checks if an attribute key is known to contain sensitive data.
// Counters such as max_tokens are not secrets; only token-valued keys are.
func isSensitiveKey(key string) bool {
	for _, k := range sensitiveKeyFragments {
		if strings.Contains(key, k) {
			return true
		}
	}
	return key == "token" || strings.HasSuffix(key, "_token") || strings.HasSuffix(key, "-token")
}
