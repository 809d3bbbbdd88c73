// Package config loads the relver configuration. Defaults reproduce the
// gbf workspace layout, so a bare checkout needs no config file at all.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gbf-rs/relver/internal/sources"
	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is the config file looked up in the working tree root.
const DefaultConfigFile = ".relver.yaml"

// ConfigPathEnv overrides the config file location when set. The
// --config flag takes precedence over it.
const ConfigPathEnv = "RELVER_CONFIG"

// Config is the main configuration structure for relver.
type Config struct {
	// Package is the crate name matched in the README dependency line.
	Package string `yaml:"package"`

	// Manifest is the primary manifest; its version is the source of truth.
	Manifest string `yaml:"manifest"`

	// Siblings are additional manifests kept in lockstep with the primary.
	Siblings []string `yaml:"siblings,omitempty"`

	// Descriptor is the package.json-style descriptor path.
	Descriptor string `yaml:"descriptor"`

	// Readme is the README document carrying the dependency snippet.
	Readme string `yaml:"readme"`

	// Remote is the git remote holding the reference branches.
	Remote string `yaml:"remote"`

	// MainBranch and DevBranch name the two reference branches.
	MainBranch string `yaml:"main-branch"`
	DevBranch  string `yaml:"dev-branch"`

	// BaseRefEnv names the environment variable carrying the CI base
	// ref, which overrides the locally detected branch.
	BaseRefEnv string `yaml:"base-ref-env"`
}

// Default returns the configuration for the gbf workspace layout.
func Default() *Config {
	return &Config{
		Package:    "gbf_core",
		Manifest:   "gbf_core/Cargo.toml",
		Siblings:   []string{"gbf_macros/Cargo.toml", "gbf_suite/Cargo.toml"},
		Descriptor: "gbf_web/package.json",
		Readme:     "README.md",
		Remote:     "origin",
		MainBranch: "main",
		DevBranch:  "dev",
		BaseRefEnv: "GITHUB_BASE_REF",
	}
}

// LoadFn is the config loader used by the CLI. It is a variable so
// tests can substitute a fixed configuration.
var LoadFn = Load

// Load reads the configuration from the given path, from the
// ConfigPathEnv variable, or from DefaultConfigFile, in that order. A
// missing default file yields the defaults; an explicitly named file
// must exist. A present file is strict-decoded and merged over the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the required fields are present.
func (c *Config) Validate() error {
	switch {
	case c.Package == "":
		return fmt.Errorf("package must not be empty")
	case c.Manifest == "":
		return fmt.Errorf("manifest must not be empty")
	case c.Descriptor == "":
		return fmt.Errorf("descriptor must not be empty")
	case c.Readme == "":
		return fmt.Errorf("readme must not be empty")
	case c.Remote == "":
		return fmt.Errorf("remote must not be empty")
	case c.MainBranch == "" || c.DevBranch == "":
		return fmt.Errorf("main-branch and dev-branch must not be empty")
	}
	return nil
}

// PrimarySource returns the source of truth, the primary manifest.
func (c *Config) PrimarySource() sources.Source {
	return sources.Manifest(c.Package, c.Manifest)
}

// CheckedSources returns the sources validated against the primary, in
// the fixed order the checks run: README first, then the sibling
// manifests, then the package descriptor.
func (c *Config) CheckedSources() []sources.Source {
	out := []sources.Source{
		sources.Readme(c.Readme, c.Readme, c.Package),
	}
	for _, path := range c.Siblings {
		out = append(out, sources.Manifest(path, path))
	}
	out = append(out, sources.Descriptor(c.Descriptor, c.Descriptor))
	return out
}

// AllSources returns every local source, primary first, in the order
// bump writes are applied.
func (c *Config) AllSources() []sources.Source {
	out := []sources.Source{c.PrimarySource()}
	for _, path := range c.Siblings {
		out = append(out, sources.Manifest(path, path))
	}
	out = append(out,
		sources.Descriptor(c.Descriptor, c.Descriptor),
		sources.Readme(c.Readme, c.Readme, c.Package),
	)
	return out
}
