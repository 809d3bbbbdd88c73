package sources

import (
	"context"
	"fmt"

	"github.com/gbf-rs/relver/internal/core"
	"github.com/gbf-rs/relver/internal/semver"
)

// BranchFileReader is the subset of git operations the remote reader
// needs. *git.Runner satisfies it.
type BranchFileReader interface {
	Fetch(ctx context.Context, remote, branch string) error
	ShowFile(ctx context.Context, ref, path string) ([]byte, error)
}

// RemoteReader extracts versions from manifest files as of the tip of a
// remote branch. Values are read fresh on every call; nothing is cached
// across a run.
type RemoteReader struct {
	git    BranchFileReader
	remote string
}

// NewRemoteReader creates a RemoteReader against the given remote name.
func NewRemoteReader(git BranchFileReader, remote string) *RemoteReader {
	return &RemoteReader{git: git, remote: remote}
}

// BranchVersion fetches the branch and reads the version held by the
// given source as of that branch's tip. The fetch and the read both
// block until git returns; a process failure wraps ErrSourceUnreadable.
func (r *RemoteReader) BranchVersion(ctx context.Context, branch string, src Source) (semver.Version, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, core.TimeoutNetwork)
	defer cancel()

	if err := r.git.Fetch(fetchCtx, r.remote, branch); err != nil {
		return semver.Version{}, fmt.Errorf("%w: failed to fetch branch %s: %w", ErrSourceUnreadable, branch, err)
	}

	showCtx, cancel := context.WithTimeout(ctx, core.TimeoutShort)
	defer cancel()

	data, err := r.git.ShowFile(showCtx, r.remote+"/"+branch, src.Path)
	if err != nil {
		return semver.Version{}, fmt.Errorf("%w: failed to read %s from branch %s: %w", ErrSourceUnreadable, src.Path, branch, err)
	}

	raw, err := ExtractVersion(data, src)
	if err != nil {
		return semver.Version{}, fmt.Errorf("branch %s: %w", branch, err)
	}

	v, err := semver.Parse(raw)
	if err != nil {
		return semver.Version{}, fmt.Errorf("branch %s: %s: %w", branch, src.Path, err)
	}
	return v, nil
}
