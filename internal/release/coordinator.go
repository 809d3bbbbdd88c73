// Package release orchestrates the relver pipeline: snapshot every
// version source, verify consistency, then either apply a bump or
// validate the branch merge rule.
package release

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gbf-rs/relver/internal/config"
	"github.com/gbf-rs/relver/internal/core"
	"github.com/gbf-rs/relver/internal/rules"
	"github.com/gbf-rs/relver/internal/semver"
	"github.com/gbf-rs/relver/internal/sources"
)

// GitClient is the set of git operations the coordinator needs.
// *git.Runner satisfies it.
type GitClient interface {
	sources.BranchFileReader
	rules.BranchReader
}

// Coordinator runs the version pipeline over a fixed set of sources.
type Coordinator struct {
	cfg    *config.Config
	reader *sources.Reader
	writer *sources.Writer
	remote *sources.RemoteReader
	git    GitClient
	logger *log.Logger
}

// NewCoordinator creates a Coordinator over the given filesystem and
// git client.
func NewCoordinator(cfg *config.Config, fs core.FileSystem, git GitClient, logger *log.Logger) *Coordinator {
	return &Coordinator{
		cfg:    cfg,
		reader: sources.NewReader(fs),
		writer: sources.NewWriter(fs),
		remote: sources.NewRemoteReader(git, cfg.Remote),
		git:    git,
		logger: logger,
	}
}

// SourceVersion pairs a source with the version it held at read time.
type SourceVersion struct {
	Source  sources.Source
	Version semver.Version
}

// Snapshot holds every version read at the start of a run. Values are
// read fresh per run; nothing is cached across invocations.
type Snapshot struct {
	// Main and Dev are the reference branch versions.
	Main semver.Version
	Dev  semver.Version

	// Current is the primary manifest's version, the source of truth.
	Current semver.Version

	// Checked are the remaining local sources, in check order.
	Checked []SourceVersion
}

// Snapshot reads the two reference branch versions and all local
// sources, logging each value as it is fetched.
func (c *Coordinator) Snapshot(ctx context.Context) (*Snapshot, error) {
	c.logger.Info("fetching versions...")

	primary := c.cfg.PrimarySource()

	main, err := c.remote.BranchVersion(ctx, c.cfg.MainBranch, primary)
	if err != nil {
		return nil, err
	}
	c.logger.Info("branch version", "branch", c.cfg.MainBranch, "version", main)

	dev, err := c.remote.BranchVersion(ctx, c.cfg.DevBranch, primary)
	if err != nil {
		return nil, err
	}
	c.logger.Info("branch version", "branch", c.cfg.DevBranch, "version", dev)

	current, err := c.reader.ReadVersion(ctx, primary)
	if err != nil {
		return nil, err
	}
	c.logger.Info("local version", "source", primary.Path, "version", current)

	snap := &Snapshot{Main: main, Dev: dev, Current: current}
	for _, src := range c.cfg.CheckedSources() {
		v, err := c.reader.ReadVersion(ctx, src)
		if err != nil {
			return nil, err
		}
		c.logger.Info("local version", "source", src.Path, "version", v)
		snap.Checked = append(snap.Checked, SourceVersion{Source: src, Version: v})
	}

	return snap, nil
}

// VerifyConsistency checks every secondary source against the primary
// version, in the fixed snapshot order. The first mismatch aborts; no
// mutation may happen before this passes.
func (c *Coordinator) VerifyConsistency(snap *Snapshot) error {
	for _, sv := range snap.Checked {
		c.logger.Info("checking version", "source", sv.Source.Path)
		desc := fmt.Sprintf("%s version mismatch", sv.Source.Path)
		if err := rules.CheckMatch(snap.Current, sv.Version, desc); err != nil {
			return err
		}
	}
	return nil
}

// ApplyBump computes the next version from the current one and writes
// it to every source in fixed order, logging each file as it is
// updated. Writes are not atomic as a group: a failure partway through
// leaves the earlier files updated, and the error names the file that
// failed so the run can be repeated.
func (c *Coordinator) ApplyBump(ctx context.Context, current semver.Version, kind semver.Kind) (semver.Version, error) {
	next, err := semver.Bump(current, kind)
	if err != nil {
		return semver.Version{}, err
	}
	c.logger.Info("bumping version", "kind", kind, "from", current, "to", next)

	for _, src := range c.cfg.AllSources() {
		if err := c.writer.WriteVersion(ctx, src, next); err != nil {
			return semver.Version{}, fmt.Errorf("failed to update version in %s: %w", src.Path, err)
		}
		c.logger.Info("updated version", "source", src.Path, "version", next)
	}

	c.logger.Info("successfully bumped version", "version", next)
	return next, nil
}

// MergeCheck resolves the target branch and applies the matching merge
// rule. Branches other than main and dev pass through unchecked.
func (c *Coordinator) MergeCheck(ctx context.Context, snap *Snapshot) error {
	branchCtx, cancel := context.WithTimeout(ctx, core.TimeoutShort)
	defer cancel()

	target, err := rules.ResolveTargetBranch(branchCtx, c.cfg.BaseRefEnv, c.git)
	if err != nil {
		return fmt.Errorf("failed to resolve target branch: %w", err)
	}
	c.logger.Info("target branch detected", "branch", target)

	switch target {
	case c.cfg.MainBranch:
		c.logger.Info("checking version for merge", "into", c.cfg.MainBranch)
		return rules.CheckMainMerge(snap.Current, snap.Main)
	case c.cfg.DevBranch:
		c.logger.Info("checking version for merge", "into", c.cfg.DevBranch)
		return rules.CheckDevMerge(snap.Current, snap.Dev)
	default:
		c.logger.Info("no version check required for this branch", "branch", target)
		return nil
	}
}
