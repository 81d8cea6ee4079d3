// Package credentials provides the bearer-token sources used to authorize
// Identity Toolkit calls: static tokens, refreshable service account keys,
// Application Default Credentials and any golang.org/x/oauth2 TokenSource.
package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
)

// Credential supplies a currently valid bearer token. Implementations are
// safe for concurrent use and refresh internally as needed.
type Credential interface {
	Token(ctx context.Context) (string, error)
}

// ProjectScoped is implemented by credentials that carry their own project
// id, i.e. service account keys.
type ProjectScoped interface {
	ProjectID() string
}

// HTTPDoer is the subset of *http.Client used for token exchanges.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config selects where the credential comes from. The first non-empty of
// Token, CredentialsJSON and CredentialsFile wins; with none set, Application
// Default Credentials are used.
type Config struct {
	// Token is a fixed bearer token, never refreshed
	Token string

	// CredentialsJSON is the content of a credentials file
	CredentialsJSON []byte

	// CredentialsFile is a path to a service account key or other Google
	// credentials JSON file
	CredentialsFile string

	// Project is the top-level project id fallback
	Project string
}

type options struct {
	doer HTTPDoer
	now  func() time.Time
}

// Option configures credential loading.
type Option func(*options)

// WithHTTPClient sets the client used to exchange service account assertions.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(o *options) { o.doer = doer }
}

// WithClock overrides the time source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func newOptions(opts []Option) options {
	o := options{
		doer: &http.Client{Timeout: 10 * time.Second},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load builds a Credential from cfg, requesting the given OAuth scopes.
func Load(ctx context.Context, cfg Config, scopes []string, opts ...Option) (Credential, error) {
	switch {
	case cfg.Token != "":
		return Static(cfg.Token), nil

	case len(cfg.CredentialsJSON) > 0:
		return fromJSON(ctx, cfg.CredentialsJSON, scopes, opts)

	case cfg.CredentialsFile != "":
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("credentials: failed to read credentials file: %w", err)
		}
		return fromJSON(ctx, data, scopes, opts)
	}

	creds, err := google.FindDefaultCredentials(ctx, scopes...)
	if err != nil {
		return nil, fmt.Errorf("credentials: failed to find default credentials: %w", err)
	}

	// Only a service account key carries a project id we trust as its own;
	// metadata-server and user credentials are wrapped as plain token sources.
	if len(creds.JSON) > 0 {
		if key, err := ParseServiceAccountKey(creds.JSON); err == nil {
			return NewServiceAccount(key, scopes, opts...)
		}
	}

	return FromTokenSource(creds.TokenSource), nil
}

func fromJSON(ctx context.Context, data []byte, scopes []string, opts []Option) (Credential, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("credentials: failed to decode credentials JSON: %w", err)
	}

	switch head.Type {
	case serviceAccountType:
		key, err := ParseServiceAccountKey(data)
		if err != nil {
			return nil, err
		}
		return NewServiceAccount(key, scopes, opts...)

	case "authorized_user", "external_account", "impersonated_service_account":
		creds, err := google.CredentialsFromJSONWithParams(ctx, data, google.CredentialsParams{Scopes: scopes})
		if err != nil {
			return nil, fmt.Errorf("credentials: failed to load %s credentials: %w", head.Type, err)
		}
		return FromTokenSource(creds.TokenSource), nil

	default:
		return nil, fmt.Errorf("credentials: unsupported credentials type %q", head.Type)
	}
}
