package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the name of the application used in paths
	AppName = "portkit"
)

// GetConfigDir returns the platform-specific configuration directory.
// On Linux: ~/.config/portkit/
// On macOS: ~/Library/Application Support/portkit/
// On Windows: %AppData%\portkit\
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName), nil
}

// getAppDataDir returns the platform-specific base data directory
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func getAppDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", errors.New("LOCALAPPDATA environment variable not set")
		}
		return localAppData, nil

	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil

	default: // Linux, BSD, etc.
		if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			return xdgDataHome, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// GetStateDir returns the base directory for mutable state. XDG_STATE_HOME
// is honored on Linux and BSD; otherwise it is the platform data directory.
func GetStateDir() (string, error) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
			return xdgStateHome, nil
		}
	}
	return getAppDataDir()
}
