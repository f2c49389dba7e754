// Package sampling launches the external metrics sampler with a timestamped
// CSV output path and mirrors its exit status.
package sampling

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultProgram is the sampling program, executed directly via its shebang.
	DefaultProgram = "./sample_metrics.py"

	// DefaultInterval is the number of seconds between samples.
	DefaultInterval = 2

	// DefaultDuration is the total number of seconds to sample.
	DefaultDuration = 60

	// DefaultSampler selects the Yokogawa power analyzer driver.
	DefaultSampler = "samplers.yokogawa"

	// DefaultLogLevel keeps a successful run silent.
	DefaultLogLevel = "warn"
)

var samplerPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Config holds the parameters of a sampling run.
// A zero-valued Config with ApplyDefaults reproduces the fixed invocation.
type Config struct {
	// Program is the path of the sampling program.
	// Default: ./sample_metrics.py
	Program string `yaml:"program"`

	// Interval is the number of seconds between samples. Default: 2.
	Interval int `yaml:"interval"`

	// Duration is the total number of seconds to sample. Default: 60.
	Duration int `yaml:"duration"`

	// Sampler is the module selector passed as the positional argument.
	// Default: samplers.yokogawa
	Sampler string `yaml:"sampler"`

	// OutDir is the directory the CSV file is placed in.
	// Empty means the working directory.
	OutDir string `yaml:"out_dir"`

	// MetricsFile is the path of an optional Prometheus textfile describing
	// the finished run. Empty disables it.
	MetricsFile string `yaml:"metrics_file"`

	// LogLevel is the log level: "debug", "info", "warn", "error".
	// Default: "warn"
	LogLevel string `yaml:"log_level"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Program == "" {
		c.Program = DefaultProgram
	}
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	if c.Sampler == "" {
		c.Sampler = DefaultSampler
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks that configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.Program == "" {
		return errors.New("sampling: config: program must not be empty")
	}
	if c.Interval < 1 {
		return fmt.Errorf("sampling: config: interval must be at least 1, got %d", c.Interval)
	}
	if c.Duration < 1 {
		return fmt.Errorf("sampling: config: duration must be at least 1, got %d", c.Duration)
	}
	if !samplerPattern.MatchString(c.Sampler) {
		return fmt.Errorf("sampling: config: invalid sampler %q", c.Sampler)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("sampling: config: invalid log_level %q (must be debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// LoadConfig reads a YAML configuration file and returns a Config with
// defaults applied and validated. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("sampling: config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("sampling: config: parse %s: %w", path, err)
		}
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal renders the configuration as a config file.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("sampling: config: marshal: %w", err)
	}
	return data, nil
}
