package main

import (
	"context"
	"os"

	"github.com/gbf-rs/relver/internal/cli"
	"github.com/gbf-rs/relver/internal/config"
	"github.com/gbf-rs/relver/internal/logging"
	"github.com/gbf-rs/relver/internal/printer"
)

// runCLI builds and runs the root command. The config starts from the
// defaults; the CLI's Before hook reloads it once flags are parsed.
func runCLI(args []string) error {
	cfg := config.Default()
	logger := logging.New(os.Stderr, "info")
	return cli.New(cfg, logger).Run(context.Background(), args)
}

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}
