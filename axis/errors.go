package axis

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the sentinel wrapped by every construction failure.
// Test with errors.Is(err, axis.ErrConfiguration).
var ErrConfiguration = errors.New("axis: invalid configuration")

// ConfigError reports which part of an axis configuration broke an invariant.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("axis: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
