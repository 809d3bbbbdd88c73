package show

import (
	"context"
	"io"
	"testing"

	"github.com/gbf-rs/relver/internal/logging"
	"github.com/gbf-rs/relver/internal/release"
	"github.com/gbf-rs/relver/internal/testutils"
	"github.com/gbf-rs/relver/internal/workflow"
	"github.com/urfave/cli/v3"
)

func TestShowCmd(t *testing.T) {
	cfg := testutils.WriteWorkspace(t, "1.4.0")

	orig := workflow.GitClientFn
	workflow.GitClientFn = func() release.GitClient {
		return &testutils.FakeGit{
			BranchManifests: map[string]string{
				"main": testutils.CargoManifest("1.3.0"),
				"dev":  testutils.CargoManifest("1.3.5"),
			},
		}
	}
	t.Cleanup(func() { workflow.GitClientFn = orig })

	root := &cli.Command{
		Name:     "relver",
		Commands: []*cli.Command{Run(cfg, logging.New(io.Discard, "error"))},
	}
	if err := root.Run(context.Background(), []string{"relver", "show"}); err != nil {
		t.Errorf("show failed: %v", err)
	}
}

func TestShowCmd_FetchFailure(t *testing.T) {
	cfg := testutils.WriteWorkspace(t, "1.4.0")

	orig := workflow.GitClientFn
	workflow.GitClientFn = func() release.GitClient {
		return &testutils.FakeGit{
			FetchErr: context.DeadlineExceeded,
		}
	}
	t.Cleanup(func() { workflow.GitClientFn = orig })

	root := &cli.Command{
		Name:     "relver",
		Commands: []*cli.Command{Run(cfg, logging.New(io.Discard, "error"))},
	}
	if err := root.Run(context.Background(), []string{"relver", "show"}); err == nil {
		t.Error("expected error when fetch fails")
	}
}
