// Package errors holds the sentinel errors shared across portkit and small
// helpers for adding context to them.
package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to replace config file")
	ErrConfigFileExists  = fmt.Errorf("config file already exists")
	ErrUnknownConfigKey  = fmt.Errorf("unknown configuration key")

	// Database errors.
	ErrInvalidPath               = fmt.Errorf("invalid path")
	ErrDatabaseLoad              = fmt.Errorf("failed to load installed database")
	ErrDatabaseParse             = fmt.Errorf("failed to parse installed database")
	ErrUnsupportedDatabaseFormat = fmt.Errorf("unsupported installed database format")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrInvalidLogLevelWithDetails reports a log level outside the accepted set.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("invalid log level %q (valid: debug, info, warn, error): %w", level, ErrConfigValidation)
}

// ErrInvalidLogFormatWithDetails reports a log format outside the accepted set.
func ErrInvalidLogFormatWithDetails(format string) error {
	return fmt.Errorf("invalid log format %q (valid: text, json): %w", format, ErrConfigValidation)
}

// ErrUnknownConfigKeyWithName reports a config key that GetValue does not know.
func ErrUnknownConfigKeyWithName(key string) error {
	return fmt.Errorf("%s: %w", key, ErrUnknownConfigKey)
}
