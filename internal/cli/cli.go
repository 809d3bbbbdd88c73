package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gbf-rs/relver/internal/commands/bump"
	"github.com/gbf-rs/relver/internal/commands/check"
	"github.com/gbf-rs/relver/internal/commands/show"
	"github.com/gbf-rs/relver/internal/config"
	"github.com/gbf-rs/relver/internal/logging"
	"github.com/gbf-rs/relver/internal/printer"
	"github.com/gbf-rs/relver/internal/version"
	"github.com/gbf-rs/relver/internal/workflow"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command, configuring all
// subcommands and flags for the relver cli. The config pointed to by
// cfg is reloaded in the Before hook once the --config flag is known,
// so the commands see the final configuration.
func New(cfg *config.Config, logger *log.Logger) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "relver",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Version consistency checks and release bumps for the gbf workspace",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the config file",
				DefaultText: config.DefaultConfigFile,
			},
			&urfavecli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
				Value: "info",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			logger.SetLevel(logging.ParseLevel(cmd.String("log-level")))

			loaded, err := config.LoadFn(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			*cfg = *loaded
			return ctx, nil
		},
		// Running relver with no subcommand performs the checks, the
		// common CI invocation.
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return workflow.Check(ctx, cfg, logger)
		},
		Commands: []*urfavecli.Command{
			check.Run(cfg, logger),
			bump.Run(cfg, logger),
			show.Run(cfg, logger),
		},
	}
}
