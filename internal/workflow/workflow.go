// Package workflow wires the release coordinator into the operations
// the CLI commands expose: check, bump, and snapshot.
package workflow

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/gbf-rs/relver/internal/config"
	"github.com/gbf-rs/relver/internal/core"
	"github.com/gbf-rs/relver/internal/git"
	"github.com/gbf-rs/relver/internal/printer"
	"github.com/gbf-rs/relver/internal/release"
	"github.com/gbf-rs/relver/internal/semver"
	"github.com/gbf-rs/relver/internal/tui"
)

// GitClientFn constructs the git client. It is a variable so tests can
// substitute a fake.
var GitClientFn = func() release.GitClient {
	return git.NewRunner()
}

// isInteractiveFn reports whether a confirmation prompt may be shown.
// Overridable in tests.
var isInteractiveFn = tui.IsInteractive

// confirmFn asks the user to confirm a bump. Overridable in tests.
var confirmFn = func(prompt string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(prompt).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func newCoordinator(cfg *config.Config, logger *log.Logger) *release.Coordinator {
	return release.NewCoordinator(cfg, core.NewOSFileSystem(), GitClientFn(), logger)
}

// Snapshot reads every version source without validating anything.
func Snapshot(ctx context.Context, cfg *config.Config, logger *log.Logger) (*release.Snapshot, error) {
	return newCoordinator(cfg, logger).Snapshot(ctx)
}

// Check runs the full validation pipeline: snapshot, consistency
// checks, and the merge rule for the resolved target branch.
func Check(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	coord := newCoordinator(cfg, logger)

	snap, err := coord.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err := coord.VerifyConsistency(snap); err != nil {
		return err
	}
	if err := coord.MergeCheck(ctx, snap); err != nil {
		return err
	}

	printer.PrintSuccess("All version checks passed!")
	return nil
}

// Bump runs the consistency checks and, only if they all pass, writes
// the bumped version to every source. When attached to a terminal and
// not running in CI, the user confirms before anything is written;
// skipConfirm suppresses the prompt.
func Bump(ctx context.Context, cfg *config.Config, logger *log.Logger, kind semver.Kind, skipConfirm bool) error {
	coord := newCoordinator(cfg, logger)

	snap, err := coord.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err := coord.VerifyConsistency(snap); err != nil {
		return err
	}

	next, err := semver.Bump(snap.Current, kind)
	if err != nil {
		return err
	}

	if !skipConfirm && isInteractiveFn() {
		prompt := fmt.Sprintf("Bump version from %s to %s across all sources?", snap.Current, next)
		confirmed, err := confirmFn(prompt)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			printer.PrintWarning("Bump cancelled")
			return nil
		}
	}

	if _, err := coord.ApplyBump(ctx, snap.Current, kind); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Bumped version from %s to %s", snap.Current, next))
	return nil
}
