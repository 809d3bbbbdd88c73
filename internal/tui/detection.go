// Package tui decides whether relver may prompt interactively.
package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are the environment variables checked to detect a CI run.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"JENKINS_HOME",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// IsInteractive reports whether prompting the user makes sense: stdout
// must be a terminal and no CI environment variable may be set. relver
// is primarily a CI tool, so this is false for its main use case and
// prompts are skipped there automatically.
func IsInteractive() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	for _, env := range ciEnvVars {
		if os.Getenv(env) != "" {
			return false
		}
	}

	return true
}

// IsTTY checks if stdout is a terminal, without the CI heuristics.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
