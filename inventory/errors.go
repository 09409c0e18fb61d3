package inventory

import (
	"errors"
	"fmt"
)

// ConfigurationError marks a condition the run cannot recover from: the
// requested topology is impossible or the output location is unusable.
// Everything else this package reports is a warning-level anomaly that the
// run survives.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

// Configf builds a ConfigurationError from a format string.
func Configf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err is, or wraps, a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
