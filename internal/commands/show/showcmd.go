package show

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gbf-rs/relver/internal/config"
	"github.com/gbf-rs/relver/internal/printer"
	"github.com/gbf-rs/relver/internal/workflow"
	"github.com/urfave/cli/v3"
)

// Run returns the "show" command.
func Run(cfg *config.Config, logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the version held by every source",
		UsageText: "relver show",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShowCmd(ctx, cfg, logger)
		},
	}
}

func runShowCmd(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	snap, err := workflow.Snapshot(ctx, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", printer.Bold(cfg.Remote+"/"+cfg.MainBranch+":"), snap.Main)
	fmt.Printf("%s %s\n", printer.Bold(cfg.Remote+"/"+cfg.DevBranch+":"), snap.Dev)
	fmt.Printf("%s %s\n", printer.Bold(cfg.Manifest+":"), snap.Current)
	for _, sv := range snap.Checked {
		fmt.Printf("%s %s\n", printer.Bold(sv.Source.Path+":"), sv.Version)
	}

	return nil
}
