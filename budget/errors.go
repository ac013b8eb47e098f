package budget

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration validation.
var (
	// ErrUnknownAllocationStrategy indicates an unrecognized allocation
	// strategy name.
	ErrUnknownAllocationStrategy = errors.New("unknown allocation strategy")

	// ErrUnknownOverflowStrategy indicates an unrecognized overflow
	// strategy name.
	ErrUnknownOverflowStrategy = errors.New("unknown overflow strategy")
)

// ConfigError reports an invalid configuration field. Unrecognized
// strategy names are rejected at construction time rather than silently
// falling back to defaults during allocation.
type ConfigError struct {
	Field string // Config field that failed validation
	Value string // Offending value
	Err   error  // Underlying error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %s: %v (got %q)", e.Field, e.Err, e.Value)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a configuration validation error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
