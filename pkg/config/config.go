// Package config provides configuration management for portkit. It loads
// the YAML settings file, fills in defaults and validates the result.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/portkit/pkg/errors"
	"github.com/glorpus-work/portkit/pkg/fsutil"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// StateDir is the base directory holding portkit/state/installed.json.
	StateDir string `yaml:"state_dir,omitempty"`

	// DatabasePath overrides the installed database location entirely.
	DatabasePath string `yaml:"database_path,omitempty"`

	// Output settings
	LogLevel     string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat    string `yaml:"log_format"` // text, json
	DisableColor bool   `yaml:"disable_color,omitempty"`
}

const (
	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	stateDir, err := fsutil.GetStateDir()
	if err != nil {
		// Fallback to the temp directory if we can't determine the state dir
		stateDir = os.TempDir()
	}

	return &Config{
		Settings: Settings{
			StateDir:  stateDir,
			LogLevel:  defaultLogLevel,
			LogFormat: defaultLogFormat,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig writes the configuration to path, replacing any existing file atomically.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Settings.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(c.Settings.LogLevel)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Settings.LogFormat] {
		return errors.ErrInvalidLogFormatWithDetails(c.Settings.LogFormat)
	}
	return nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Settings.StateDir == "" {
		c.Settings.StateDir = defaults.Settings.StateDir
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Settings.LogFormat == "" {
		c.Settings.LogFormat = defaults.Settings.LogFormat
	}
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := fsutil.GetConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GetDatabasePath returns the path to the installed packages database.
func (c *Config) GetDatabasePath() string {
	if c.Settings.DatabasePath != "" {
		return c.Settings.DatabasePath
	}
	return filepath.Join(c.Settings.StateDir, fsutil.AppName, "state", "installed.json")
}
