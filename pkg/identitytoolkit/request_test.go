package identitytoolkit

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/identitytoolkit/pkg/credentials"
	"github.com/aussiebroadwan/identitytoolkit/pkg/slogx"
)

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

type failingCredential struct{ err error }

func (c failingCredential) Token(context.Context) (string, error) { return "", c.err }

type echoResponse struct {
	Value string `json:"value"`
}

func respond(status int, body string) doerFunc {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    req,
		}, nil
	}
}

func newTestRequester(doer HTTPDoer, cred credentials.Credential) *requester {
	return &requester{
		doer:    doer,
		cred:    cred,
		baseURL: "https://identitytoolkit.example.com",
		rc:      ResolvedContext{ProjectID: "p", APIKey: "k&y"},
		logger:  slogx.Discard(),
	}
}

func TestWithKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/v1/accounts:lookup?key=abc", withKey("/v1/accounts:lookup", "abc"))
	require.Equal(t, "/v1/x?alt=json&key=abc", withKey("/v1/x?alt=json", "abc"))
	require.Equal(t, "/v1/x?key=a%2Bb%26c", withKey("/v1/x", "a+b&c"))
}

func TestSend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	body := map[string]string{"a": "b"}

	t.Run("success decodes the body", func(t *testing.T) {
		t.Parallel()

		var got *http.Request
		doer := doerFunc(func(req *http.Request) (*http.Response, error) {
			got = req
			return respond(http.StatusOK, `{"value":"ok"}`)(req)
		})
		r := newTestRequester(doer, credentials.Static("tok"))

		out, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/accounts:lookup", map[string]string{"X-Extra": "1"}, body)
		require.NoError(t, err)
		require.Equal(t, "ok", out.Value)

		require.Equal(t, "https://identitytoolkit.example.com/v1/accounts:lookup?key=k%26y", got.URL.String())
		require.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
		require.Equal(t, "application/json", got.Header.Get("Content-Type"))
		require.Equal(t, "1", got.Header.Get("X-Extra"))
	})

	t.Run("caller headers win over defaults", func(t *testing.T) {
		t.Parallel()

		var got *http.Request
		doer := doerFunc(func(req *http.Request) (*http.Response, error) {
			got = req
			return respond(http.StatusOK, `{}`)(req)
		})
		r := newTestRequester(doer, credentials.Static("tok"))

		_, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", map[string]string{"Content-Type": "text/plain"}, body)
		require.NoError(t, err)
		require.Equal(t, []string{"text/plain"}, got.Header.Values("Content-Type"))
	})

	t.Run("empty 2xx body is success", func(t *testing.T) {
		t.Parallel()

		r := newTestRequester(respond(http.StatusOK, ""), credentials.Static("tok"))

		out, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, body)
		require.NoError(t, err)
		require.Empty(t, out.Value)
	})

	t.Run("transport error is not decoded", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		r := newTestRequester(doerFunc(func(*http.Request) (*http.Response, error) {
			return nil, cause
		}), credentials.Static("tok"))

		out, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, body)
		require.Nil(t, out)
		require.True(t, IsTransport(err))
		require.ErrorIs(t, err, cause)
	})

	t.Run("token failure is a transport error and sends nothing", func(t *testing.T) {
		t.Parallel()

		called := false
		doer := doerFunc(func(req *http.Request) (*http.Response, error) {
			called = true
			return respond(http.StatusOK, `{}`)(req)
		})
		cause := errors.New("refresh failed")
		r := newTestRequester(doer, failingCredential{err: cause})

		_, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, body)
		require.True(t, IsTransport(err))
		require.ErrorIs(t, err, cause)
		require.False(t, called)
	})

	t.Run("error envelope is remote", func(t *testing.T) {
		t.Parallel()

		r := newTestRequester(respond(http.StatusBadRequest,
			`{"error":{"code":400,"message":"INVALID_ID_TOKEN","status":"INVALID_ARGUMENT"}}`), credentials.Static("tok"))

		_, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, body)
		require.True(t, IsRemote(err))

		e, ok := AsError(err)
		require.True(t, ok)
		require.Equal(t, StatusInvalidArgument, e.Status)
		require.Equal(t, "INVALID_ID_TOKEN", e.Message)
		require.Equal(t, 400, e.HTTPStatusCode)
	})

	t.Run("garbage 2xx body is a decode failure", func(t *testing.T) {
		t.Parallel()

		r := newTestRequester(respond(http.StatusOK, `garbage`), credentials.Static("tok"))

		_, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, body)
		require.True(t, IsDecodeFailure(err))
	})

	t.Run("error envelope with 2xx status is remote", func(t *testing.T) {
		t.Parallel()

		calls := 0
		r := newTestRequester(doerFunc(func(req *http.Request) (*http.Response, error) {
			calls++
			return respond(http.StatusOK,
				`{"error":{"code":400,"message":"EMAIL_NOT_FOUND","status":"INVALID_ARGUMENT"}}`)(req)
		}), credentials.Static("tok"))

		out, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, body)
		require.Nil(t, out)
		require.True(t, IsRemote(err))
		require.Equal(t, 1, calls)

		e, ok := AsError(err)
		require.True(t, ok)
		require.Equal(t, StatusInvalidArgument, e.Status)
		require.Equal(t, "EMAIL_NOT_FOUND", e.Message)
		require.Equal(t, 400, e.HTTPStatusCode)
	})

	t.Run("2xx body with a malformed error member is a decode failure", func(t *testing.T) {
		t.Parallel()

		r := newTestRequester(respond(http.StatusOK, `{"value":"ok","error":{}}`), credentials.Static("tok"))

		_, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, body)
		require.True(t, IsDecodeFailure(err))
	})

	t.Run("null error member is still success", func(t *testing.T) {
		t.Parallel()

		r := newTestRequester(respond(http.StatusOK, `{"value":"ok","error":null}`), credentials.Static("tok"))

		out, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, body)
		require.NoError(t, err)
		require.Equal(t, "ok", out.Value)
	})

	t.Run("garbage is a decode failure", func(t *testing.T) {
		t.Parallel()

		r := newTestRequester(respond(http.StatusBadGateway, `<html>bad gateway</html>`), credentials.Static("tok"))

		_, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, body)
		require.True(t, IsDecodeFailure(err))

		e, _ := AsError(err)
		require.Equal(t, http.StatusBadGateway, e.HTTPStatusCode)
	})

	t.Run("unencodable body is unknown", func(t *testing.T) {
		t.Parallel()

		r := newTestRequester(respond(http.StatusOK, `{}`), credentials.Static("tok"))

		_, err := send[echoResponse](ctx, r, http.MethodPost, "/v1/x", nil, map[string]any{"ch": make(chan int)})
		e, ok := AsError(err)
		require.True(t, ok)
		require.Equal(t, KindUnknown, e.Kind)
		require.True(t, strings.HasPrefix(e.Message, "an unknown error occurred"))
	})

	t.Run("no body omits content type", func(t *testing.T) {
		t.Parallel()

		var got *http.Request
		doer := doerFunc(func(req *http.Request) (*http.Response, error) {
			got = req
			return respond(http.StatusOK, `{}`)(req)
		})
		r := newTestRequester(doer, credentials.Static("tok"))

		_, err := send[echoResponse](ctx, r, http.MethodGet, "/v1/x", nil, nil)
		require.NoError(t, err)
		require.Empty(t, got.Header.Get("Content-Type"))
	})
}
