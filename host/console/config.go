// Console configuration
package console

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the console's connection settings.
type Config struct {
	Console ConsoleConfig `yaml:"console"`
}

type ConsoleConfig struct {
	Device        string `yaml:"device"`
	Baud          int    `yaml:"baud"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`
}

// LoadConfig reads and parses a YAML configuration file, filling defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("console: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration bytes, filling defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("console: parse config: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in missing values.
func applyDefaults(cfg *Config) {
	if cfg.Console.Device == "" {
		cfg.Console.Device = "/dev/ttyACM0"
	}
	if cfg.Console.Baud == 0 {
		cfg.Console.Baud = 115200
	}
	if cfg.Console.ReadTimeoutMs == 0 {
		cfg.Console.ReadTimeoutMs = 100
	}
}

// Validate checks configuration correctness. It does not mutate.
func Validate(cfg *Config) error {
	if cfg.Console.Baud < 0 {
		return fmt.Errorf("console: baud must be >= 0, got %d", cfg.Console.Baud)
	}
	if cfg.Console.ReadTimeoutMs < 0 {
		return fmt.Errorf("console: read_timeout_ms must be >= 0, got %d", cfg.Console.ReadTimeoutMs)
	}
	return nil
}
