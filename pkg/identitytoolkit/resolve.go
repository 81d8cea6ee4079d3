package identitytoolkit

import (
	"github.com/hashicorp/go-multierror"

	"github.com/aussiebroadwan/identitytoolkit/pkg/credentials"
)

// Environment variables consulted at construction, in precedence order.
const (
	EnvGoogleProjectID = "GOOGLE_PROJECT_ID"
	EnvProjectID       = "PROJECT_ID"
	EnvGoogleAPIKey    = "GOOGLE_API_KEY"
	EnvAPIKey          = "API_KEY"
)

// LookupEnv reads one environment variable. os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

// EnvFromMap returns a LookupEnv backed by m.
func EnvFromMap(m map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// ResolvedContext is the project and API key a Client sends requests with.
// Both fields are non-empty once resolution succeeds.
type ResolvedContext struct {
	ProjectID string
	APIKey    string
}

// ResolveContext determines the project id and API key. The project id is
// the first non-empty of GOOGLE_PROJECT_ID, PROJECT_ID, the project embedded
// in a service account credential, cfg.Project and credCfg.Project. The API
// key is the first non-empty of GOOGLE_API_KEY and API_KEY.
//
// Every missing value is reported; errors.Is matches ErrProjectIDMissing and
// ErrAPIKeyMissing.
func ResolveContext(
	lookup LookupEnv,
	cred credentials.Credential,
	cfg Config,
	credCfg credentials.Config,
) (ResolvedContext, error) {
	var embedded string
	if ps, ok := cred.(credentials.ProjectScoped); ok {
		embedded = ps.ProjectID()
	}

	rc := ResolvedContext{
		ProjectID: firstNonEmpty(
			env(lookup, EnvGoogleProjectID),
			env(lookup, EnvProjectID),
			embedded,
			cfg.Project,
			credCfg.Project,
		),
		APIKey: firstNonEmpty(
			env(lookup, EnvGoogleAPIKey),
			env(lookup, EnvAPIKey),
		),
	}

	var result *multierror.Error
	if rc.ProjectID == "" {
		result = multierror.Append(result, ErrProjectIDMissing.clone())
	}
	if rc.APIKey == "" {
		result = multierror.Append(result, ErrAPIKeyMissing.clone())
	}
	if err := result.ErrorOrNil(); err != nil {
		if len(result.Errors) == 1 {
			return ResolvedContext{}, result.Errors[0]
		}
		return ResolvedContext{}, err
	}

	return rc, nil
}

func env(lookup LookupEnv, key string) string {
	if lookup == nil {
		return ""
	}
	v, _ := lookup(key)
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
