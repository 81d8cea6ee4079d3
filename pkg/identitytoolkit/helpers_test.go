package identitytoolkit_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/identitytoolkit/pkg/credentials"
	"github.com/aussiebroadwan/identitytoolkit/pkg/identitytoolkit"
)

const (
	testProjectID = "demo-project"
	testAPIKey    = "test-api-key"
	testToken     = "test-access-token"
)

// captured is the last request a fakeAPI received.
type captured struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   []byte
}

// fakeAPI is an httptest server that records each request and replies with
// a canned status and body.
type fakeAPI struct {
	*httptest.Server

	mu     sync.Mutex
	last   *captured
	calls  int
	status int
	reply  string
}

func newFakeAPI(t *testing.T, status int, reply string) *fakeAPI {
	t.Helper()

	f := &fakeAPI{status: status, reply: reply}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		f.mu.Lock()
		f.calls++
		f.last = &captured{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		}
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, f.reply)
	}))
	t.Cleanup(f.Close)

	return f
}

func (f *fakeAPI) Last(t *testing.T) *captured {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotNil(t, f.last, "no request received")
	return f.last
}

func (f *fakeAPI) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testEnv() identitytoolkit.LookupEnv {
	return identitytoolkit.EnvFromMap(map[string]string{
		identitytoolkit.EnvGoogleProjectID: testProjectID,
		identitytoolkit.EnvGoogleAPIKey:    testAPIKey,
	})
}

// newTestClient returns a Client pointed at baseURL with a static token and
// a fixed environment.
func newTestClient(t *testing.T, baseURL string, opts ...identitytoolkit.Option) *identitytoolkit.Client {
	t.Helper()

	cfg := identitytoolkit.DefaultConfig()
	cfg.BaseURL = baseURL

	opts = append([]identitytoolkit.Option{
		identitytoolkit.WithCredential(credentials.Static(testToken)),
		identitytoolkit.WithLookupEnv(testEnv()),
	}, opts...)

	client, err := identitytoolkit.NewClient(context.Background(), credentials.Config{}, cfg, opts...)
	require.NoError(t, err)
	return client
}
