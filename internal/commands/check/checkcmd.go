package check

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gbf-rs/relver/internal/config"
	"github.com/gbf-rs/relver/internal/semver"
	"github.com/gbf-rs/relver/internal/workflow"
	"github.com/urfave/cli/v3"
)

// Run returns the "check" command.
func Run(cfg *config.Config, logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify version consistency and branch merge rules",
		UsageText: `relver check [--flags]

Reads the version from every configured source, verifies they all
match, and validates the merge rule for the resolved target branch.
With --bump, applies the bump to all sources after the checks pass.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bump",
				Usage: "Bump the version after checks pass: major, minor, or patch",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt when bumping",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCheckCmd(ctx, cmd, cfg, logger)
		},
	}
}

func runCheckCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config, logger *log.Logger) error {
	bump := cmd.String("bump")
	if bump == "" {
		return workflow.Check(ctx, cfg, logger)
	}

	kind, err := semver.ParseKind(bump)
	if err != nil {
		return err
	}
	return workflow.Bump(ctx, cfg, logger, kind, cmd.Bool("yes"))
}
