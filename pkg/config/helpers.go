package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/glorpus-work/portkit/pkg/errors"
)

// SetValue sets a configuration value by key
// Supported keys:
//   - state_dir: string - Base directory for portkit state
//   - database_path: string - Explicit path of the installed database
//   - log_level: string - Logging level (debug, info, warn, error)
//   - log_format: string - Log record format (text, json)
//   - disable_color: bool - Whether to turn off colored notices
func (c *Config) SetValue(key, value string) error {
	updated := *c
	switch key {
	case "state_dir":
		updated.Settings.StateDir = value
	case "database_path":
		updated.Settings.DatabasePath = value
	case "log_level":
		updated.Settings.LogLevel = value
	case "log_format":
		updated.Settings.LogFormat = value
	case "disable_color":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s: %w", key, value, errors.ErrConfigValidation)
		}
		updated.Settings.DisableColor = boolVal
	default:
		return errors.ErrUnknownConfigKeyWithName(key)
	}

	if err := updated.Validate(); err != nil {
		return err
	}
	*c = updated
	return nil
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	value, ok := c.ToMap()[key]
	if !ok {
		return "", errors.ErrUnknownConfigKeyWithName(key)
	}
	return value, nil
}

// ToMap returns the settings keyed by their YAML names.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string)

	settingsValue := reflect.ValueOf(c.Settings)
	settingsType := settingsValue.Type()

	for i := 0; i < settingsValue.NumField(); i++ {
		field := settingsType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}

		// Handle yaml tags with options (e.g., "state_dir,omitempty")
		yamlKey := strings.Split(yamlTag, ",")[0]

		fieldValue := settingsValue.Field(i)
		switch fieldValue.Kind() {
		case reflect.Bool:
			result[yamlKey] = strconv.FormatBool(fieldValue.Bool())
		case reflect.String:
			result[yamlKey] = fieldValue.String()
		default:
			result[yamlKey] = fmt.Sprintf("%v", fieldValue.Interface())
		}
	}

	return result
}
