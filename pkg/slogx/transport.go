package slogx

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// redactedParams are query parameters never written to logs.
var redactedParams = []string{"key", "access_token"}

// Transport wraps next so every outbound request is logged at debug level
// with its status and duration. The logger attached to the request context
// is used when present, so records carry the caller's call_id.
func Transport(base *slog.Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{base: base, next: next}
}

type loggingTransport struct {
	base *slog.Logger
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	logger := FromContextOr(r.Context(), t.base).With(
		"method", r.Method,
		"host", r.URL.Host,
		"path", r.URL.Path,
		"query", RedactQuery(r.URL.Query()),
	)

	resp, err := t.next.RoundTrip(r)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		logger.Debug("http_client_request", "error", err.Error(), "duration_ms", duration)
		return nil, err
	}

	logger.Debug("http_client_request", "status", resp.StatusCode, "duration_ms", duration)
	return resp, nil
}

// RedactQuery encodes q with secret parameters masked.
func RedactQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}

	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = v
	}
	for _, k := range redactedParams {
		if out.Has(k) {
			out.Set(k, "REDACTED")
		}
	}
	return out.Encode()
}
