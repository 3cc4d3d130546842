package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultWorkers is the worker bound used when none is configured.
const DefaultWorkers = 10

// Config is the full run configuration. Precedence, lowest to highest:
// built-in defaults, config file, TLSCHECK_* environment, command flags.
type Config struct {
	URL          string        `yaml:"url" env:"TLSCHECK_URL"`
	Tests        []string      `yaml:"tests" env:"TLSCHECK_TESTS" envSeparator:","`
	Workers      int           `yaml:"workers" env:"TLSCHECK_WORKERS"`
	JSON         bool          `yaml:"json" env:"TLSCHECK_JSON"`
	Input        string        `yaml:"input" env:"TLSCHECK_INPUT"`
	CheckTimeout time.Duration `yaml:"check_timeout" env:"TLSCHECK_CHECK_TIMEOUT"`
	Verbose      bool          `yaml:"verbose" env:"TLSCHECK_VERBOSE"`
}

func Default() *Config {
	return &Config{
		Workers: DefaultWorkers,
	}
}

// Load reads configuration from the given YAML file, then applies
// environment overrides. An empty path searches the standard locations and
// silently falls back to defaults when no file exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findDefault()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps values into their valid ranges.
func (c *Config) Normalize() {
	if c.Workers < 1 {
		c.Workers = 1
	}
}

// findDefault returns the first existing config file among the standard
// search locations: ./tlscheck.yaml, ~/.config/tlscheck/config.yaml.
func findDefault() string {
	candidates := []string{"tlscheck.yaml"}

	home, err := os.UserHomeDir()
	if err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "tlscheck", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
