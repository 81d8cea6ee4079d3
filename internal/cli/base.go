package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/aussiebroadwan/identitytoolkit/pkg/identitytoolkit"
	"github.com/aussiebroadwan/identitytoolkit/pkg/slogx"
)

// Command holds what every subcommand shares: the UI, the global flags and
// the way a client is built from them.
type Command struct {
	UI cli.Ui

	// LogWriter receives log records (default: os.Stderr)
	LogWriter io.Writer

	// LookupEnv is passed to the client for project id and API key
	// resolution (default: os.LookupEnv)
	LookupEnv identitytoolkit.LookupEnv

	flagConfig          string
	flagEnvFile         string
	flagCredentialsFile string
	flagProject         string
	flagBaseURL         string
	flagLogLevel        string
}

// NewCommand returns a Command writing to ui.
func NewCommand(ui cli.Ui) *Command {
	return &Command{
		UI:        ui,
		LogWriter: os.Stderr,
		LookupEnv: os.LookupEnv,
	}
}

// FlagSet wraps a flag.FlagSet so commands can render their options in Help.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help renders the flag defaults for a command's help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer

	out := f.Output()
	f.SetOutput(&buf)
	f.PrintDefaults()
	f.SetOutput(out)

	return "\n\nOptions:\n\n" + buf.String()
}

// newFlagSet returns a flag set for name with the global flags registered.
func (c *Command) newFlagSet(name string) *FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f := NewFlagSet(fs)
	f.StringVar(&c.flagConfig, "config", "", "Path to a YAML config file.")
	f.StringVar(&c.flagEnvFile, "env-file", "", "Path to a .env file (default: ./.env when present).")
	f.StringVar(&c.flagCredentialsFile, "credentials-file", "", "Path to a Google credentials JSON file.")
	f.StringVar(&c.flagProject, "project", "", "Project id fallback.")
	f.StringVar(&c.flagBaseURL, "base-url", "", "API endpoint, e.g. the Auth emulator.")
	f.StringVar(&c.flagLogLevel, "log-level", "", "Log level: debug, info, warn or error.")

	return f
}

// loadConfig loads the CLI configuration with the global flags applied.
func (c *Command) loadConfig() (Config, error) {
	return LoadConfig(LoadOptions{
		ConfigFile: c.flagConfig,
		EnvFile:    c.flagEnvFile,
		Overrides: map[string]string{
			"credentials_file": c.flagCredentialsFile,
			"project":          c.flagProject,
			"base_url":         c.flagBaseURL,
			"log_level":        c.flagLogLevel,
		},
	})
}

// newClient builds a client from the loaded configuration. At debug level
// every outbound request is logged as well.
func (c *Command) newClient(ctx context.Context, cfg Config) (*identitytoolkit.Client, error) {
	logger := slogx.New(slogx.Config{
		Service: "idtk",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Writer:  c.LogWriter,
	})

	var transport http.RoundTripper = http.DefaultTransport
	if slogx.ParseLevel(cfg.LogLevel) <= slog.LevelDebug {
		transport = slogx.Transport(logger, transport)
	}
	httpClient := &http.Client{Timeout: cfg.Timeout, Transport: transport}

	credCfg, apiCfg := cfg.ClientConfig()

	return identitytoolkit.NewClient(ctx, credCfg, apiCfg,
		identitytoolkit.WithHTTPClient(httpClient),
		identitytoolkit.WithLogger(logger),
		identitytoolkit.WithLookupEnv(c.LookupEnv),
	)
}

// call is one Identity Toolkit operation run by a subcommand.
type call func(ctx context.Context, accounts *identitytoolkit.AccountsService) (any, error)

// execute parses args, builds a client, runs fn and prints its result as
// JSON. It returns the process exit code.
func (c *Command) execute(args []string, f *FlagSet, fn call) int {
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() > 0 {
		c.UI.Error(fmt.Sprintf("unexpected arguments: %s", strings.Join(f.Args(), " ")))
		return 1
	}

	cfg, err := c.loadConfig()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, err := c.newClient(ctx, cfg)
	if err != nil {
		c.reportError(err)
		return 1
	}

	resp, err := fn(ctx, client.Accounts)
	if err != nil {
		c.reportError(err)
		return 1
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding response: %v", err))
		return 1
	}

	c.UI.Output(string(out))
	return 0
}

// reportError prints a classified error field by field, anything else as is.
// Configuration errors are printed whole since both values may be missing.
func (c *Command) reportError(err error) {
	e, ok := identitytoolkit.AsError(err)
	if !ok || e.Kind == identitytoolkit.KindConfigurationMissing {
		c.UI.Error(fmt.Sprintf("error: %v", err))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "kind=%s", e.Kind)
	if e.Status != "" {
		fmt.Fprintf(&b, " status=%s", e.Status)
	}
	if e.HTTPStatusCode != 0 {
		fmt.Fprintf(&b, " code=%d", e.HTTPStatusCode)
	}
	fmt.Fprintf(&b, " message=%q", e.Message)
	if e.Err != nil {
		fmt.Fprintf(&b, " cause=%q", e.Err.Error())
	}

	c.UI.Error(b.String())
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// optional returns nil for an empty flag value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
