package storage

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Default configuration values
const (
	DefaultPath     = "carts.json"
	DefaultIndent   = false
	DefaultLogLevel = "info"
)

// Config represents store configuration loaded from a YAML file.
type Config struct {
	// Path is the cart file.
	Path string `yaml:"path"`

	// Indent writes indented JSON.
	Indent bool `yaml:"indent"`

	// FileMode is the octal permission of the cart file, e.g. "0600".
	FileMode string `yaml:"file_mode"`

	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Path:     DefaultPath,
		Indent:   DefaultIndent,
		FileMode: fmt.Sprintf("%04o", uint32(DefaultFileMode)),
		LogLevel: DefaultLogLevel,
	}
}

// LoadConfig loads the YAML config at path if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if _, err := cfg.Mode(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Mode parses FileMode. An empty value means DefaultFileMode.
func (c *Config) Mode() (os.FileMode, error) {
	if c.FileMode == "" {
		return DefaultFileMode, nil
	}
	n, err := strconv.ParseUint(c.FileMode, 8, 32)
	if err != nil || n > 0777 {
		return 0, fmt.Errorf("file_mode %q is not an octal permission", c.FileMode)
	}
	return os.FileMode(n), nil
}

// OpenConfig returns a Store configured by cfg.
// A nil log discards diagnostics.
func OpenConfig(cfg *Config, log *zap.Logger) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("config has no path")
	}
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	return Open(cfg.Path,
		WithIndent(cfg.Indent),
		WithFileMode(mode),
		WithLogger(log),
	), nil
}
