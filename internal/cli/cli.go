// Package cli implements idtk, a command line front end for the Identity
// Toolkit accounts API.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/cli"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// Commands returns the subcommand factories writing to ui.
func Commands(ui cli.Ui) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"signup": func() (cli.Command, error) {
			return &SignUpCommand{Command: NewCommand(ui)}, nil
		},
		"signin-password": func() (cli.Command, error) {
			return &SignInPasswordCommand{Command: NewCommand(ui)}, nil
		},
		"signin-custom-token": func() (cli.Command, error) {
			return &SignInCustomTokenCommand{Command: NewCommand(ui)}, nil
		},
		"lookup": func() (cli.Command, error) {
			return &LookupCommand{Command: NewCommand(ui)}, nil
		},
		"delete": func() (cli.Command, error) {
			return &DeleteCommand{Command: NewCommand(ui)}, nil
		},
		"send-oob-code": func() (cli.Command, error) {
			return &SendOobCodeCommand{Command: NewCommand(ui)}, nil
		},
		"reset-password": func() (cli.Command, error) {
			return &ResetPasswordCommand{Command: NewCommand(ui)}, nil
		},
		"create-auth-uri": func() (cli.Command, error) {
			return &CreateAuthURICommand{Command: NewCommand(ui)}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Command: NewCommand(ui)}, nil
		},
	}
}

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := filepath.Base(args[0])

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{cliName, "version"}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:       cliName,
		Args:       args[1:],
		Version:    Version,
		Commands:   Commands(ui),
		HelpWriter: os.Stderr,
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error executing CLI: %v\n", err)
		return 1
	}

	return exitCode
}
