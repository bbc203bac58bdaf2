package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/glorpus-work/portkit/internal/logger"
	"github.com/glorpus-work/portkit/pkg/config"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration and applies the global flags on top of it.
func loadConfig() (*config.Config, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return nil, fmt.Errorf("failed to determine config path")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	if NoColor != nil && *NoColor {
		cfg.Settings.DisableColor = true
	}

	setupOutput(cfg)
	logger.Debug("Configuration loaded", logger.Fields{"path": configPath})

	return cfg, nil
}

// setupOutput initializes logging and color handling from the effective config.
func setupOutput(cfg *config.Config) {
	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.LogFormat))

	if cfg.Settings.DisableColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		logger.Warn("Failed to get default config path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}
