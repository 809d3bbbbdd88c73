// Package git wraps the git invocations relver needs: fetching a remote
// branch, reading a file as of a ref, and resolving the current branch.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes git commands in the current working tree.
type Runner struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewRunner creates a Runner using the default exec.CommandContext.
func NewRunner() *Runner {
	return &Runner{
		execCommand: exec.CommandContext,
	}
}

// Fetch updates the local tracking ref for a remote branch.
func (r *Runner) Fetch(ctx context.Context, remote, branch string) error {
	cmd := r.execCommand(ctx, "git", "fetch", remote, branch)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return fmt.Errorf("git fetch %s %s failed: %w", remote, branch, err)
	}
	return nil
}

// ShowFile returns the contents of a file as of the given ref,
// e.g. ShowFile(ctx, "origin/main", "gbf_core/Cargo.toml").
func (r *Runner) ShowFile(ctx context.Context, ref, path string) ([]byte, error) {
	cmd := r.execCommand(ctx, "git", "show", ref+":"+path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return nil, fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return nil, fmt.Errorf("git show %s:%s failed: %w", ref, path, err)
	}
	return stdout.Bytes(), nil
}

// CurrentBranch returns the name of the checked-out branch.
func (r *Runner) CurrentBranch(ctx context.Context) (string, error) {
	cmd := r.execCommand(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return "", fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return "", fmt.Errorf("git rev-parse failed: %w", err)
	}

	branch := strings.TrimSpace(stdout.String())
	if branch == "" {
		return "", fmt.Errorf("could not determine current branch")
	}
	return branch, nil
}
