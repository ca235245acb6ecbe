// Package config loads the CLI's own runtime settings (telemetry
// endpoints and search defaults) from a YAML file, independently of any
// particular scenario file. It mirrors the teacher's LoadConfig/SaveConfig/
// ExampleConfig trio, including ${ENV_VAR} interpolation for secrets.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds settings that apply across every scenario a CLI invocation
// runs, as opposed to scenario.Scenario which is per-problem.
type Config struct {
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Defaults  DefaultsConfig  `yaml:"defaults"`
}

// TelemetryConfig points at optional metrics backends. Empty URLs disable
// the corresponding backend; see telemetry.NewReporter.
type TelemetryConfig struct {
	PushgatewayURL string `yaml:"pushgateway_url"`
	InfluxURL      string `yaml:"influx_url"`
	InfluxToken    string `yaml:"influx_token"` // supports ${ENV_VAR} interpolation
	InfluxOrg      string `yaml:"influx_org"`
	InfluxBucket   string `yaml:"influx_bucket"`
}

// DefaultsConfig supplies fallback search parameters for scenarios that
// don't set their own.
type DefaultsConfig struct {
	Heuristic     string `yaml:"heuristic"`
	MaxExpansions int    `yaml:"max_expansions"`
	TimeBudgetMS  int    `yaml:"time_budget_ms"`
}

// DefaultConfig returns a Config with sensible defaults: no telemetry
// backends configured, zero heuristic, unbounded search.
func DefaultConfig() *Config {
	return &Config{
		Telemetry: TelemetryConfig{},
		Defaults: DefaultsConfig{
			Heuristic:     "zero",
			MaxExpansions: 0,
			TimeBudgetMS:  0,
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing path returns
// defaults rather than an error, matching the teacher's tolerant behavior
// for optional config files.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to path as YAML, creating parent directories.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExampleConfig returns a commented example config file.
func ExampleConfig() string {
	return `# goapc configuration file
# Omitted settings keep their defaults; ${VAR} references are expanded
# from the environment when the file is loaded.

telemetry:
  # Leave blank to disable a backend entirely.
  pushgateway_url: ""
  influx_url: ""
  influx_token: ${INFLUX_TOKEN}
  influx_org: ""
  influx_bucket: ""

defaults:
  # zero | mismatch | domain_aware | rpg_add
  heuristic: rpg_add

  # 0 means unbounded
  max_expansions: 0
  time_budget_ms: 0
`
}
