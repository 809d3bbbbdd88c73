// Package rules implements the version policies enforced before a
// release: pairwise consistency between sources and branch-specific
// merge rules for main and dev.
package rules

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gbf-rs/relver/internal/semver"
)

// ErrInvalidBump is returned when a version transition violates the
// merge rule for the target branch.
var ErrInvalidBump = errors.New("invalid version bump")

// MismatchError reports two sources that disagree on the version.
type MismatchError struct {
	// Description identifies the check, e.g. "gbf_web/package.json version mismatch".
	Description string
	Expected    semver.Version
	Actual      semver.Version
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("version mismatch: %s: expected %s, found %s", e.Description, e.Expected, e.Actual)
}

// CheckMatch fails with a *MismatchError iff a != b. Detection is
// symmetric; b is reported as the expected value.
func CheckMatch(a, b semver.Version, description string) error {
	if a != b {
		return &MismatchError{Description: description, Expected: b, Actual: a}
	}
	return nil
}

// CheckMainMerge validates the transition from the main branch version
// to the current one. Merging into main is only legal as a major bump
// that zeroes minor and patch, or a minor bump that zeroes patch.
func CheckMainMerge(current, main semver.Version) error {
	switch {
	case current.Major > main.Major:
		if current.Minor != 0 || current.Patch != 0 {
			return fmt.Errorf("%w: when bumping the major version, minor and patch must be 0 (got %s)", ErrInvalidBump, current)
		}
		return nil
	case current.Major == main.Major:
		if current.Minor <= main.Minor {
			return fmt.Errorf("%w: minor version must be greater than the main branch version %s (got %s)", ErrInvalidBump, main, current)
		}
		if current.Patch != 0 {
			return fmt.Errorf("%w: when bumping the minor version, patch must be set to 0 (got %s)", ErrInvalidBump, current)
		}
		return nil
	default:
		return fmt.Errorf("%w: version must move forward from %s; increment the major or minor version", ErrInvalidBump, main)
	}
}

// CheckDevMerge validates the transition from the dev branch version to
// the current one. Only the patch component may change on dev, and it
// must strictly increase.
func CheckDevMerge(current, dev semver.Version) error {
	if current.Major != dev.Major || current.Minor != dev.Minor {
		return fmt.Errorf("%w: when merging into dev, only the patch version can change (dev is %s, got %s)", ErrInvalidBump, dev, current)
	}
	if current.Compare(dev) <= 0 {
		return fmt.Errorf("%w: patch version must be greater than the dev branch version %s (got %s)", ErrInvalidBump, dev, current)
	}
	return nil
}

// BranchReader resolves the checked-out branch. *git.Runner satisfies it.
type BranchReader interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// ResolveTargetBranch determines the branch the current work is being
// merged into. A CI-provided base ref (e.g. GITHUB_BASE_REF on pull
// requests) wins over the locally checked-out branch.
func ResolveTargetBranch(ctx context.Context, baseRefEnv string, git BranchReader) (string, error) {
	if baseRefEnv != "" {
		if ref := os.Getenv(baseRefEnv); ref != "" {
			return ref, nil
		}
	}
	return git.CurrentBranch(ctx)
}
