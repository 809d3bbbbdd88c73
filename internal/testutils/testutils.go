// Package testutils provides shared helpers for CLI-level tests: a fake
// git client and a temporary workspace matching the configured layout.
package testutils

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gbf-rs/relver/internal/config"
)

// FakeGit implements the git operations the pipeline needs without
// shelling out. Branch manifests are served by ref name.
type FakeGit struct {
	// BranchManifests maps branch name to the manifest content served
	// for refs of the form "<remote>/<branch>".
	BranchManifests map[string]string

	// Branch is what CurrentBranch reports.
	Branch string

	// FetchErr, when set, fails every Fetch call.
	FetchErr error
}

func (f *FakeGit) Fetch(ctx context.Context, remote, branch string) error {
	return f.FetchErr
}

func (f *FakeGit) ShowFile(ctx context.Context, ref, path string) ([]byte, error) {
	for branch, content := range f.BranchManifests {
		if ref == "origin/"+branch {
			return []byte(content), nil
		}
	}
	return nil, errors.New("fatal: invalid object name")
}

func (f *FakeGit) CurrentBranch(ctx context.Context) (string, error) {
	if f.Branch == "" {
		return "", errors.New("fatal: not a git repository")
	}
	return f.Branch, nil
}

// CargoManifest returns a minimal Cargo.toml holding the given version.
func CargoManifest(version string) string {
	return "[package]\nname = \"pkg\"\nversion = \"" + version + "\"\n"
}

// WriteWorkspace creates a temporary tree with every source file at the
// given version and returns a config pointing into it. The base-ref
// variable is redirected so ambient CI values cannot leak in.
func WriteWorkspace(t *testing.T, version string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"gbf_core/Cargo.toml":   CargoManifest(version),
		"gbf_macros/Cargo.toml": CargoManifest(version),
		"gbf_suite/Cargo.toml":  CargoManifest(version),
		"gbf_web/package.json":  `{"name": "gbf_web", "version": "` + version + `"}`,
		"README.md":             "Install with:\n\ngbf_core = \"" + version + "\"\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Default()
	cfg.Manifest = filepath.Join(dir, "gbf_core/Cargo.toml")
	cfg.Siblings = []string{
		filepath.Join(dir, "gbf_macros/Cargo.toml"),
		filepath.Join(dir, "gbf_suite/Cargo.toml"),
	}
	cfg.Descriptor = filepath.Join(dir, "gbf_web/package.json")
	cfg.Readme = filepath.Join(dir, "README.md")
	cfg.BaseRefEnv = "RELVER_TEST_BASE_REF"
	t.Setenv(cfg.BaseRefEnv, "")
	return cfg
}
