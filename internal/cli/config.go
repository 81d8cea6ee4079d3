package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aussiebroadwan/identitytoolkit/pkg/credentials"
	"github.com/aussiebroadwan/identitytoolkit/pkg/identitytoolkit"
)

// envPrefix namespaces the CLI's own environment variables. The API key and
// project id variables read by the client keep their unprefixed names.
const envPrefix = "IDTK"

// defaultEnvFile is loaded when present and no -env-file is given.
const defaultEnvFile = ".env"

// Config is the CLI configuration.
type Config struct {
	Env             string        `mapstructure:"env"`              // dev, staging, prod (default: prod)
	LogLevel        string        `mapstructure:"log_level"`        // debug, info, warn, error (default: warn)
	LogFormat       string        `mapstructure:"log_format"`       // json, text (default: text)
	CredentialsFile string        `mapstructure:"credentials_file"` // Optional: service account or other Google credentials file
	Token           string        `mapstructure:"token"`            // Optional: static bearer token, wins over CredentialsFile
	Project         string        `mapstructure:"project"`          // Optional: project id fallback
	BaseURL         string        `mapstructure:"base_url"`         // Optional: API endpoint override (default: production)
	Timeout         time.Duration `mapstructure:"timeout"`          // HTTP timeout per call (default: 30s)
	Scopes          []string      `mapstructure:"scopes"`           // OAuth scopes (default: identitytoolkit)
}

// LoadOptions selects the files LoadConfig reads and the flag values that
// override everything else.
type LoadOptions struct {
	ConfigFile string
	EnvFile    string

	// Overrides are applied last; empty values are ignored.
	Overrides map[string]string
}

// LoadConfig reads configuration from, in increasing precedence, defaults,
// an optional YAML file, IDTK_* environment variables and overrides. An .env
// file is loaded into the process environment first.
func LoadConfig(opts LoadOptions) (Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("env", "prod")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("credentials_file", "")
	v.SetDefault("token", "")
	v.SetDefault("project", "")
	v.SetDefault("base_url", identitytoolkit.DefaultBaseURL)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("scopes", []string{string(identitytoolkit.ScopeIdentityToolkit)})

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for key, value := range opts.Overrides {
		if value != "" {
			v.Set(key, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return nil
	}

	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", defaultEnvFile, err)
	}
	return nil
}

// Validate checks the loaded configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Env, validation.Required, validation.In("dev", "staging", "prod")),
		validation.Field(&c.LogLevel, validation.Required,
			validation.By(oneOfFold("debug", "info", "warn", "warning", "error"))),
		validation.Field(&c.LogFormat, validation.Required, validation.By(oneOfFold("json", "text"))),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.Scopes, validation.Required),
	)
}

// ClientConfig splits the CLI configuration into the credential and API
// configuration NewClient takes.
func (c Config) ClientConfig() (credentials.Config, identitytoolkit.Config) {
	credCfg := credentials.Config{
		Token:           c.Token,
		CredentialsFile: c.CredentialsFile,
		Project:         c.Project,
	}

	apiCfg := identitytoolkit.DefaultConfig()
	apiCfg.BaseURL = c.BaseURL
	apiCfg.Scopes = make([]identitytoolkit.Scope, 0, len(c.Scopes))
	for _, s := range c.Scopes {
		apiCfg.Scopes = append(apiCfg.Scopes, identitytoolkit.Scope(strings.TrimSpace(s)))
	}

	return credCfg, apiCfg
}

func oneOfFold(values ...string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		for _, v := range values {
			if strings.EqualFold(s, v) {
				return nil
			}
		}
		return fmt.Errorf("must be one of %s", strings.Join(values, ", "))
	}
}
