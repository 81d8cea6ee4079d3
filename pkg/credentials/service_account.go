package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

const (
	serviceAccountType = "service_account"

	// defaultTokenURI is used when a key file carries no token_uri.
	defaultTokenURI = "https://oauth2.googleapis.com/token"

	// expiryBuffer refreshes the access token before it actually expires.
	expiryBuffer = 30 * time.Second
)

// ServiceAccountKey is the JSON key file Google issues for a service account.
type ServiceAccountKey struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`
}

// ParseServiceAccountKey decodes and checks a service account key file.
func ParseServiceAccountKey(data []byte) (*ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("credentials: failed to decode service account key: %w", err)
	}

	switch {
	case key.Type != serviceAccountType:
		return nil, fmt.Errorf("credentials: not a service account key (type %q)", key.Type)
	case key.ClientEmail == "":
		return nil, errors.New("credentials: service account key has no client_email")
	case key.PrivateKey == "":
		return nil, errors.New("credentials: service account key has no private_key")
	}

	if key.TokenURI == "" {
		key.TokenURI = defaultTokenURI
	}

	return &key, nil
}

// ServiceAccount is a refreshable credential backed by a service account key.
// Access tokens are obtained with a signed JWT bearer assertion and cached
// until shortly before they expire.
type ServiceAccount struct {
	key    *ServiceAccountKey
	signer *assertionSigner
	scopes []string
	doer   HTTPDoer
	now    func() time.Time

	mu    sync.RWMutex
	token *oauth2.Token
}

// NewServiceAccount creates a credential for key requesting scopes. No
// network call is made until the first Token.
func NewServiceAccount(key *ServiceAccountKey, scopes []string, opts ...Option) (*ServiceAccount, error) {
	signer, err := newAssertionSigner(key.PrivateKeyID, []byte(key.PrivateKey))
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)

	return &ServiceAccount{
		key:    key,
		signer: signer,
		scopes: append([]string(nil), scopes...),
		doer:   o.doer,
		now:    o.now,
	}, nil
}

// ProjectID returns the project the service account belongs to.
func (s *ServiceAccount) ProjectID() string { return s.key.ProjectID }

// Email returns the service account's client email.
func (s *ServiceAccount) Email() string { return s.key.ClientEmail }

// Token returns a valid access token, refreshing it if it is about to expire.
func (s *ServiceAccount) Token(ctx context.Context) (string, error) {
	tok, err := s.validToken(ctx)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// TokenSource exposes the credential as an oauth2.TokenSource sharing the
// same cache.
func (s *ServiceAccount) TokenSource(ctx context.Context) oauth2.TokenSource {
	return serviceAccountTokenSource{ctx: ctx, sa: s}
}

func (s *ServiceAccount) fresh(now time.Time) bool {
	return s.token != nil && now.Before(s.token.Expiry.Add(-expiryBuffer))
}

func (s *ServiceAccount) validToken(ctx context.Context) (*oauth2.Token, error) {
	s.mu.RLock()
	if s.fresh(s.now()) {
		tok := s.token
		s.mu.RUnlock()
		return tok, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock
	if s.fresh(s.now()) {
		return s.token, nil
	}

	now := s.now()
	assertion, err := s.signer.sign(s.key.ClientEmail, s.key.TokenURI, s.scopes, now)
	if err != nil {
		return nil, fmt.Errorf("credentials: failed to sign assertion: %w", err)
	}

	tok, err := exchangeAssertion(ctx, s.doer, s.key.TokenURI, assertion, now)
	if err != nil {
		return nil, fmt.Errorf("credentials: failed to refresh token: %w", err)
	}

	s.token = tok
	return tok, nil
}

type serviceAccountTokenSource struct {
	ctx context.Context
	sa  *ServiceAccount
}

func (ts serviceAccountTokenSource) Token() (*oauth2.Token, error) {
	return ts.sa.validToken(ts.ctx)
}
