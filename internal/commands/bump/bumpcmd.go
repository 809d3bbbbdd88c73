package bump

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gbf-rs/relver/internal/config"
	"github.com/gbf-rs/relver/internal/semver"
	"github.com/gbf-rs/relver/internal/workflow"
	"github.com/urfave/cli/v3"
)

// Run returns the "bump" parent command.
func Run(cfg *config.Config, logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Bump the version across all sources (major, minor, patch)",
		UsageText: "relver bump <subcommand> [--flags]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Commands: []*cli.Command{
			kindCmd(cfg, logger, semver.KindMajor, "Bump the major version, resetting minor and patch"),
			kindCmd(cfg, logger, semver.KindMinor, "Bump the minor version, resetting patch"),
			kindCmd(cfg, logger, semver.KindPatch, "Bump the patch version"),
		},
	}
}

// kindCmd builds one bump subcommand. Consistency checks always run
// before anything is written.
func kindCmd(cfg *config.Config, logger *log.Logger, kind semver.Kind, usage string) *cli.Command {
	return &cli.Command{
		Name:  string(kind),
		Usage: usage,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return workflow.Bump(ctx, cfg, logger, kind, cmd.Bool("yes"))
		},
	}
}
