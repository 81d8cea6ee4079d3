package identitytoolkit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aussiebroadwan/identitytoolkit/pkg/credentials"
	"github.com/aussiebroadwan/identitytoolkit/pkg/slogx"
)

// Client is an Identity Toolkit API client. Its project id, API key and
// credential are fixed at construction; it is safe for concurrent use.
type Client struct {
	// Accounts exposes the accounts:* operations.
	Accounts *AccountsService

	cfg  Config
	rc   ResolvedContext
	cred credentials.Credential
}

type clientOptions struct {
	doer   HTTPDoer
	cred   credentials.Credential
	lookup LookupEnv
	logger *slog.Logger
}

// Option configures NewClient.
type Option func(*clientOptions)

// WithHTTPClient sets the transport used for API calls and, when the
// credential is loaded by NewClient, for token exchanges.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(o *clientOptions) { o.doer = doer }
}

// WithCredential uses cred instead of loading one from the credentials
// configuration.
func WithCredential(cred credentials.Credential) Option {
	return func(o *clientOptions) { o.cred = cred }
}

// WithLookupEnv replaces the process environment during resolution.
func WithLookupEnv(lookup LookupEnv) Option {
	return func(o *clientOptions) { o.lookup = lookup }
}

// WithLogger sets the logger calls are reported to. By default nothing is
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = logger }
}

// NewClient loads the credential, resolves the project id and API key and
// returns a ready Client. A missing project id or API key fails here with a
// KindConfigurationMissing error; no call is ever attempted without them.
func NewClient(ctx context.Context, credCfg credentials.Config, cfg Config, opts ...Option) (*Client, error) {
	o := clientOptions{
		doer:   &http.Client{Timeout: 10 * time.Second},
		lookup: os.LookupEnv,
		logger: slogx.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("identitytoolkit: invalid config: %w", err)
	}

	cred := o.cred
	if cred == nil {
		var err error
		cred, err = credentials.Load(ctx, credCfg, cfg.scopeStrings(), credentials.WithHTTPClient(o.doer))
		if err != nil {
			return nil, fmt.Errorf("identitytoolkit: failed to load credentials: %w", err)
		}
	}

	rc, err := ResolveContext(o.lookup, cred, cfg, credCfg)
	if err != nil {
		return nil, err
	}

	r := &requester{
		doer:    o.doer,
		cred:    cred,
		baseURL: cfg.BaseURL,
		rc:      rc,
		logger:  o.logger.With("project_id", rc.ProjectID),
	}

	return &Client{
		Accounts: &AccountsService{r: r},
		cfg:      cfg,
		rc:       rc,
		cred:     cred,
	}, nil
}

// ProjectID returns the resolved project id.
func (c *Client) ProjectID() string { return c.rc.ProjectID }

// Config returns the configuration after defaults were applied.
func (c *Client) Config() Config { return c.cfg }

// Credential returns the credential requests are authorized with.
func (c *Client) Credential() credentials.Credential { return c.cred }
