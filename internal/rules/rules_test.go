package rules

import (
	"context"
	"errors"
	"testing"

	"github.com/gbf-rs/relver/internal/semver"
)

func v(major, minor, patch int) semver.Version {
	return semver.Version{Major: major, Minor: minor, Patch: patch}
}

func TestCheckMatch(t *testing.T) {
	if err := CheckMatch(v(1, 2, 3), v(1, 2, 3), "README.md version mismatch"); err != nil {
		t.Errorf("equal versions should pass: %v", err)
	}

	err := CheckMatch(v(1, 2, 3), v(1, 2, 4), "README.md version mismatch")
	if err == nil {
		t.Fatal("differing versions should fail")
	}

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}
	if mismatch.Description != "README.md version mismatch" {
		t.Errorf("description = %q", mismatch.Description)
	}
	if mismatch.Expected != v(1, 2, 4) || mismatch.Actual != v(1, 2, 3) {
		t.Errorf("expected/actual = %v/%v", mismatch.Expected, mismatch.Actual)
	}
}

func TestCheckMatch_SymmetricDetection(t *testing.T) {
	a, b := v(1, 0, 0), v(2, 0, 0)

	if CheckMatch(a, b, "x") == nil || CheckMatch(b, a, "x") == nil {
		t.Error("mismatch must be detected regardless of argument order")
	}
	if CheckMatch(a, a, "x") != nil || CheckMatch(b, b, "x") != nil {
		t.Error("equal versions must pass regardless of argument order")
	}
}

func TestCheckMainMerge(t *testing.T) {
	tests := []struct {
		name    string
		main    semver.Version
		current semver.Version
		wantErr bool
	}{
		{"major bump", v(1, 0, 0), v(2, 0, 0), false},
		{"major bump must zero minor and patch", v(1, 2, 0), v(2, 1, 0), true},
		{"major bump with patch set", v(1, 2, 0), v(2, 0, 1), true},
		{"minor bump", v(1, 2, 3), v(1, 3, 0), false},
		{"minor bump must zero patch", v(1, 2, 3), v(1, 3, 1), true},
		{"minor not increased", v(1, 2, 0), v(1, 2, 0), true},
		{"patch-only change", v(1, 2, 0), v(1, 2, 1), true},
		{"backward", v(2, 0, 0), v(1, 9, 9), true},
		{"several minors ahead", v(1, 2, 3), v(1, 5, 0), false},
		{"two majors ahead", v(1, 4, 2), v(3, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMainMerge(tt.current, tt.main)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CheckMainMerge(%v -> %v) expected error", tt.main, tt.current)
				}
				if !errors.Is(err, ErrInvalidBump) {
					t.Errorf("error = %v, want ErrInvalidBump", err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckMainMerge(%v -> %v) unexpected error: %v", tt.main, tt.current, err)
			}
		})
	}
}

func TestCheckDevMerge(t *testing.T) {
	tests := []struct {
		name    string
		dev     semver.Version
		current semver.Version
		wantErr bool
	}{
		{"patch bump", v(1, 2, 3), v(1, 2, 4), false},
		{"minor changed", v(1, 2, 3), v(1, 3, 0), true},
		{"major changed", v(1, 2, 3), v(2, 2, 4), true},
		{"patch not increased", v(1, 2, 3), v(1, 2, 3), true},
		{"patch decreased", v(1, 2, 3), v(1, 2, 2), true},
		{"several patches ahead", v(1, 2, 3), v(1, 2, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDevMerge(tt.current, tt.dev)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CheckDevMerge(%v -> %v) expected error", tt.dev, tt.current)
				}
				if !errors.Is(err, ErrInvalidBump) {
					t.Errorf("error = %v, want ErrInvalidBump", err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckDevMerge(%v -> %v) unexpected error: %v", tt.dev, tt.current, err)
			}
		})
	}
}

type fakeBranchReader struct {
	branch string
	err    error
}

func (f *fakeBranchReader) CurrentBranch(ctx context.Context) (string, error) {
	return f.branch, f.err
}

func TestResolveTargetBranch_EnvWins(t *testing.T) {
	t.Setenv("RELVER_TEST_BASE_REF", "main")

	branch, err := ResolveTargetBranch(context.Background(), "RELVER_TEST_BASE_REF", &fakeBranchReader{branch: "feature/x"})
	if err != nil {
		t.Fatal(err)
	}
	if branch != "main" {
		t.Errorf("branch = %q, want %q", branch, "main")
	}
}

func TestResolveTargetBranch_FallsBackToGit(t *testing.T) {
	t.Setenv("RELVER_TEST_BASE_REF", "")

	branch, err := ResolveTargetBranch(context.Background(), "RELVER_TEST_BASE_REF", &fakeBranchReader{branch: "dev"})
	if err != nil {
		t.Fatal(err)
	}
	if branch != "dev" {
		t.Errorf("branch = %q, want %q", branch, "dev")
	}
}

func TestResolveTargetBranch_GitError(t *testing.T) {
	t.Setenv("RELVER_TEST_BASE_REF", "")

	_, err := ResolveTargetBranch(context.Background(), "RELVER_TEST_BASE_REF", &fakeBranchReader{err: errors.New("not a repository")})
	if err == nil {
		t.Fatal("expected error when git fails and no base ref is set")
	}
}
