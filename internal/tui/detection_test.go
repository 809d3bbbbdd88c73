package tui

import "testing"

func TestIsInteractive_FalseInCI(t *testing.T) {
	t.Setenv("CI", "true")

	if IsInteractive() {
		t.Error("IsInteractive must be false when CI is set")
	}
}

func TestIsInteractive_FalseWithoutTTY(t *testing.T) {
	// Test binaries run with stdout piped, so this exercises the
	// terminal check regardless of CI variables.
	t.Setenv("CI", "")

	if IsInteractive() && !IsTTY() {
		t.Error("IsInteractive must imply IsTTY")
	}
}
