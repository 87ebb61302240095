package config

import (
	"fmt"
	"os"
)

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.Sweep != nil && cfg.Sweep.Density == 0 {
		cfg.Sweep.Density = DefaultSweepDensity
	}
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log_format: %s (must be text or json)", cfg.LogFormat)
	}

	if len(cfg.Cases) == 0 && !cfg.Sweep.Enabled() {
		return fmt.Errorf("at least one case or a sweep must be defined")
	}

	names := make(map[string]bool)
	for i, c := range cfg.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d: name cannot be empty", i)
		}
		if names[c.Name] {
			return fmt.Errorf("duplicate case name: %s", c.Name)
		}
		names[c.Name] = true
		if err := validateFilterSpec(c.A); err != nil {
			return fmt.Errorf("case %s: a: %w", c.Name, err)
		}
		if err := validateFilterSpec(c.B); err != nil {
			return fmt.Errorf("case %s: b: %w", c.Name, err)
		}
	}

	if cfg.Sweep != nil {
		if err := validateSweep(cfg.Sweep); err != nil {
			return fmt.Errorf("sweep validation failed: %w", err)
		}
	}

	return nil
}

func validateFilterSpec(f FilterSpec) error {
	switch f.Preset {
	case "", PresetAll, PresetNone:
		return nil
	default:
		return fmt.Errorf("invalid preset %q (must be all or none)", f.Preset)
	}
}

func validateSweep(s *Sweep) error {
	if s.Pairs < 0 {
		return fmt.Errorf("pairs cannot be negative, got %d", s.Pairs)
	}
	if s.Density < 0 || s.Density > 1 {
		return fmt.Errorf("density must be between 0 and 1, got %f", s.Density)
	}
	return nil
}
