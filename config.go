package diagram

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the build settings, typically diagram.yaml.
//
//	build:
//	  concurrency: 4
//	logging:
//	  level: debug
type Config struct {
	Build   *BuildSettings   `yaml:"build,omitempty" json:"build,omitempty"`
	Logging *LoggingSettings `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// BuildSettings controls how diagrams are assembled.
type BuildSettings struct {
	// Concurrency is the number of components resolved in parallel.
	// Default: 1 (sequential)
	Concurrency int `yaml:"concurrency,omitempty" json:"concurrency,omitempty"`
}

// LoggingSettings controls the builder's default logger.
type LoggingSettings struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level,omitempty" json:"level,omitempty"`

	// Format is "text" or "json".
	// Default: text
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// GetConcurrency returns the configured concurrency or the default value.
func (b *BuildSettings) GetConcurrency() int {
	if b == nil || b.Concurrency <= 0 {
		return 1
	}
	return b.Concurrency
}

// GetLevel returns the configured log level or the default value.
func (l *LoggingSettings) GetLevel() slog.Level {
	if l == nil {
		return slog.LevelInfo
	}
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetFormat returns the configured log format or the default value.
func (l *LoggingSettings) GetFormat() string {
	if l == nil || l.Format == "" {
		return "text"
	}
	return strings.ToLower(l.Format)
}

// Validate checks the configuration for values that cannot be applied.
func (c *Config) Validate() error {
	if c.Build != nil && c.Build.Concurrency < 0 {
		return fmt.Errorf("%w: build.concurrency must not be negative, got %d", ErrInvalidConfig, c.Build.Concurrency)
	}
	if c.Logging != nil {
		switch strings.ToLower(c.Logging.Level) {
		case "", "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
		}
		switch strings.ToLower(c.Logging.Format) {
		case "", "text", "json":
		default:
			return fmt.Errorf("%w: unknown logging.format %q", ErrInvalidConfig, c.Logging.Format)
		}
	}
	return nil
}

// Options converts the configuration into build options. Logs are written to
// stderr using the configured level and format.
func (c *Config) Options() []BuildOption {
	handlerOpts := &slog.HandlerOptions{Level: c.Logging.GetLevel()}
	var handler slog.Handler
	if c.Logging.GetFormat() == "json" {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	return []BuildOption{
		WithConcurrency(c.Build.GetConcurrency()),
		WithLogger(slog.New(handler)),
	}
}

// LoadConfig reads and validates a configuration file.
// The format is detected by file extension (.json, .yaml, .yml).
// If path is a directory, diagram.yaml or diagram.yml inside it is used.
func LoadConfig(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, NewConfigurationError("LoadConfig", fmt.Errorf("config not found: %w", err))
	}

	if info.IsDir() {
		found := ""
		for _, name := range []string{"diagram.yaml", "diagram.yml"} {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				found = candidate
				break
			}
		}
		if found == "" {
			return nil, NewConfigurationError("LoadConfig", fmt.Errorf("%w: no diagram.yaml or diagram.yml in %s", ErrInvalidConfig, path))
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigurationError("LoadConfig", fmt.Errorf("failed to read config file: %w", err))
	}

	var cfg Config
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, NewConfigurationError("LoadConfig", fmt.Errorf("failed to parse JSON config: %w", err))
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, NewConfigurationError("LoadConfig", fmt.Errorf("failed to parse YAML config: %w", err))
		}
	default:
		return nil, NewConfigurationError("LoadConfig", fmt.Errorf("%w: unsupported config format: %s (supported: .json, .yaml, .yml)", ErrInvalidConfig, ext))
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewConfigurationError("LoadConfig", err)
	}
	return &cfg, nil
}
