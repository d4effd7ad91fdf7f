// Package config loads the optional tauripack.yaml invocation file, which
// mirrors the CLI flags so CI pipelines can keep inputs in the repository.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "tauripack.yaml"

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "TAURIPACK_CONFIG"

// Config holds the CI invocation inputs. Flags override file values.
type Config struct {
	// ProjectPath is the repository root to operate on.
	ProjectPath string `yaml:"projectPath,omitempty"`

	// ConfigPath is an explicit path to the native configuration file.
	ConfigPath string `yaml:"configPath,omitempty"`

	// IconPath triggers icon generation after init when set.
	IconPath string `yaml:"iconPath,omitempty"`

	// BundleIdentifier overrides bundle.identifier after init when set.
	BundleIdentifier string `yaml:"bundleIdentifier,omitempty"`

	// Runner is the external CLI invocation, e.g. "cargo tauri" or
	// "npm run tauri --". Empty means auto-detect.
	Runner string `yaml:"runner,omitempty"`

	// Debug selects the debug bundle profile for artifact discovery.
	Debug bool `yaml:"debug,omitempty"`
}

// Load reads the invocation config. A missing file is not an error: the
// zero Config applies. Unknown keys are rejected so typos fail loudly.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if cfg.ProjectPath == "" {
		cfg.ProjectPath = "."
	}

	return &cfg, nil
}
