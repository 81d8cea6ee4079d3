package identitytoolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/identitytoolkit/pkg/credentials"
	"github.com/aussiebroadwan/identitytoolkit/pkg/slogx"
)

// HTTPDoer sends one HTTP request. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// requester prepares, sends and decodes every call. It is immutable after
// construction and safe for concurrent use.
type requester struct {
	doer    HTTPDoer
	cred    credentials.Credential
	baseURL string
	rc      ResolvedContext
	logger  *slog.Logger
}

// withKey appends the API key query parameter to path.
func withKey(path, apiKey string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "key=" + url.QueryEscape(apiKey)
}

// send performs one call and decodes the result as T. Failures are always
// returned as *Error. Nothing is retried.
func send[T any](
	ctx context.Context,
	r *requester,
	method, path string,
	headers map[string]string,
	body any,
) (*T, error) {
	ctx, logger := slogx.WithCallID(ctx, r.logger, slogx.NewCallID())
	start := time.Now()

	out, status, err := do[T](ctx, r, method, path, headers, body)

	attrs := []any{
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		kind := KindUnknown
		if e, ok := AsError(err); ok {
			kind = e.Kind
		}
		logger.WarnContext(ctx, "identitytoolkit_call_failed", append(attrs, "kind", kind.String(), "error", err.Error())...)
		return nil, err
	}

	logger.DebugContext(ctx, "identitytoolkit_call", attrs...)
	return out, nil
}

func do[T any](
	ctx context.Context,
	r *requester,
	method, path string,
	headers map[string]string,
	body any,
) (*T, int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, 0, newUnknownError("failed to encode request", err)
		}
		reader = bytes.NewReader(encoded)
	}

	// The token must be in hand before anything is sent
	token, err := r.cred.Token(ctx)
	if err != nil {
		return nil, 0, newTransportError("failed to obtain access token", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+withKey(path, r.rc.APIKey), reader)
	if err != nil {
		return nil, 0, newUnknownError("failed to create request", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := r.doer.Do(req)
	if err != nil {
		return nil, 0, newTransportError("failed to send request", err)
	}
	defer resp.Body.Close()

	// Read body once for both success decoding and error classification
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, newTransportError("failed to read response body", err)
	}

	if out, ok := decodeSuccess[T](resp.StatusCode, raw); ok {
		return out, resp.StatusCode, nil
	}

	return nil, resp.StatusCode, Classify(raw, resp.StatusCode)
}

// decodeSuccess is the single attempt at the success shape: a 2xx status
// whose body unmarshals into T and carries no "error" member.
func decodeSuccess[T any](statusCode int, raw []byte) (*T, bool) {
	if statusCode < 200 || statusCode >= 300 {
		return nil, false
	}

	var out T
	if len(bytes.TrimSpace(raw)) == 0 {
		return &out, true
	}
	if hasErrorMember(raw) {
		return nil, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return &out, true
}

// hasErrorMember reports whether raw is a JSON object with a non-null
// top-level "error" member. Unknown fields are ignored when decoding T, so
// an error envelope would otherwise pass as an empty success.
func hasErrorMember(raw []byte) bool {
	var probe struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	v := bytes.TrimSpace(probe.Error)
	return len(v) > 0 && !bytes.Equal(v, []byte("null"))
}
