package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ytguide/pkg/errors"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServeAddress     = "127.0.0.1:8080"
	DefaultClipboardTimeout = 5 * time.Second
	DefaultOutputFormat     = "text"
)

// Config holds the complete configuration
type Config struct {
	Serve     ServeConfig     `yaml:"serve"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	Display   DisplayConfig   `yaml:"display"`
	Script    ScriptConfig    `yaml:"script"`
}

type ServeConfig struct {
	Address string `yaml:"address"`
}

type ClipboardConfig struct {
	// Timeout bounds a single clipboard write.
	Timeout time.Duration `yaml:"timeout"`
}

type DisplayConfig struct {
	Color  *bool  `yaml:"color,omitempty"`
	Format string `yaml:"format"`
}

type ScriptConfig struct {
	OutputPath string `yaml:"output_path"`
}

// ColorEnabled reports whether terminal output should be colored. Unset
// means enabled.
func (c *Config) ColorEnabled() bool {
	return c.Display.Color == nil || *c.Display.Color
}

// Default returns the configuration used when no file and no environment
// overrides exist.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from the XDG config directory
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "ytguide", "config.yaml"), nil
}

// Save saves the configuration to file
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return saveToPath(configPath, cfg)
}

func saveToPath(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string) (bool, bool) {
	value := os.Getenv(key)
	if value == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}
	return parsed, true
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvironmentOverrides(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// No file is fine, defaults and env vars apply
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config
func applyEnvironmentOverrides(cfg *Config) error {
	cfg.Serve.Address = getEnv("YTGUIDE_SERVE_ADDR", cfg.Serve.Address)
	cfg.Script.OutputPath = getEnv("YTGUIDE_SCRIPT_PATH", cfg.Script.OutputPath)
	cfg.Display.Format = getEnv("YTGUIDE_FORMAT", cfg.Display.Format)

	if value := os.Getenv("YTGUIDE_CLIPBOARD_TIMEOUT"); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.ConfigError(fmt.Sprintf("invalid YTGUIDE_CLIPBOARD_TIMEOUT %q: %v", value, err))
		}
		cfg.Clipboard.Timeout = d
	}

	if noColor, ok := getEnvBool("YTGUIDE_NO_COLOR"); ok {
		enabled := !noColor
		cfg.Display.Color = &enabled
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Serve.Address == "" {
		cfg.Serve.Address = DefaultServeAddress
	}
	if cfg.Clipboard.Timeout == 0 {
		cfg.Clipboard.Timeout = DefaultClipboardTimeout
	}
	if cfg.Display.Format == "" {
		cfg.Display.Format = DefaultOutputFormat
	}
}

// validateConfig ensures all configuration values are usable
func validateConfig(cfg *Config) error {
	if _, _, err := net.SplitHostPort(cfg.Serve.Address); err != nil {
		return errors.ConfigError(fmt.Sprintf("serve address %q is not host:port", cfg.Serve.Address))
	}
	if cfg.Clipboard.Timeout < 0 {
		return errors.ConfigError("clipboard timeout must not be negative")
	}
	switch cfg.Display.Format {
	case "text", "json", "yaml", "markdown", "html":
	default:
		return errors.ConfigError(fmt.Sprintf("unknown output format %q (text, json, yaml, markdown, html)", cfg.Display.Format))
	}
	return nil
}
