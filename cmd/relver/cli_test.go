package main

import (
	"strings"
	"testing"

	"github.com/gbf-rs/relver/internal/config"
	"github.com/gbf-rs/relver/internal/release"
	"github.com/gbf-rs/relver/internal/testutils"
	"github.com/gbf-rs/relver/internal/workflow"
)

func TestRunCLI_Check(t *testing.T) {
	cfg := testutils.WriteWorkspace(t, "1.3.0")

	origLoad := config.LoadFn
	config.LoadFn = func(path string) (*config.Config, error) { return cfg, nil }
	t.Cleanup(func() { config.LoadFn = origLoad })

	origGit := workflow.GitClientFn
	workflow.GitClientFn = func() release.GitClient {
		return &testutils.FakeGit{
			BranchManifests: map[string]string{
				"main": testutils.CargoManifest("1.2.3"),
				"dev":  testutils.CargoManifest("1.2.9"),
			},
			Branch: "main",
		}
	}
	t.Cleanup(func() { workflow.GitClientFn = origGit })

	if err := runCLI([]string{"relver", "check"}); err != nil {
		t.Errorf("runCLI failed: %v", err)
	}
}

func TestRunCLI_ExplicitConfigMissing(t *testing.T) {
	err := runCLI([]string{"relver", "--config", "/nonexistent/.relver.yaml", "check"})
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}
