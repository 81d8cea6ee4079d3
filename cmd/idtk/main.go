package main

import (
	"os"

	"github.com/aussiebroadwan/identitytoolkit/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args))
}
