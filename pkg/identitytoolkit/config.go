package identitytoolkit

import (
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultBaseURL is the production Identity Toolkit endpoint.
const DefaultBaseURL = "https://identitytoolkit.googleapis.com"

// DefaultServiceAccount is the service account alias used when none is set.
const DefaultServiceAccount = "default"

// Scope is an OAuth scope the credential is requested with.
type Scope string

const (
	ScopeIdentityToolkit Scope = "https://www.googleapis.com/auth/identitytoolkit"
	ScopeFirebase        Scope = "https://www.googleapis.com/auth/firebase"
	ScopeCloudPlatform   Scope = "https://www.googleapis.com/auth/cloud-platform"
)

// Config is the API-level configuration of a Client.
type Config struct {
	// Scopes requested for the bearer credential (default: identitytoolkit)
	Scopes []Scope

	// ServiceAccount is the alias of the service account in use (default: "default")
	ServiceAccount string

	// Project overrides the project id; environment variables and a service
	// account's own project still take precedence
	Project string

	// BaseURL overrides the API endpoint, e.g. for the Auth emulator
	// (default: https://identitytoolkit.googleapis.com)
	BaseURL string
}

// DefaultConfig returns the configuration used by most callers.
func DefaultConfig() Config {
	return Config{
		Scopes:         []Scope{ScopeIdentityToolkit},
		ServiceAccount: DefaultServiceAccount,
		BaseURL:        DefaultBaseURL,
	}
}

// withDefaults fills in zero fields.
func (c Config) withDefaults() Config {
	if len(c.Scopes) == 0 {
		c.Scopes = []Scope{ScopeIdentityToolkit}
	}
	if c.ServiceAccount == "" {
		c.ServiceAccount = DefaultServiceAccount
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	return c
}

// Validate checks the configuration as given, before defaults apply.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ServiceAccount, validation.Required),
		validation.Field(&c.Scopes,
			validation.Required,
			validation.Each(validation.In(ScopeIdentityToolkit, ScopeFirebase, ScopeCloudPlatform).
				Error("must be a known Identity Toolkit scope")),
		),
		validation.Field(&c.BaseURL, validation.By(absoluteURL)),
	)
}

// scopeStrings returns the scopes as plain strings for the credential loader.
func (c Config) scopeStrings() []string {
	out := make([]string, 0, len(c.Scopes))
	for _, s := range c.Scopes {
		out = append(out, string(s))
	}
	return out
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http(s) URL")
	}
	return nil
}
