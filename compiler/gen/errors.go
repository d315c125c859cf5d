package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("ddlgen: missing configuration")
	// ErrGenerationFailed indicates a generation failure.
	ErrGenerationFailed = errors.New("ddlgen: generation failed")
	// ErrUnsupported indicates a feature the target dialect cannot express.
	ErrUnsupported = errors.New("ddlgen: unsupported by dialect")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("ddlgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("ddlgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a failure in one phase of a run.
type GenerationError struct {
	Phase   Phase
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("ddlgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(string(e.Phase))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase Phase, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		Message: message,
		Cause:   cause,
	}
}

// UnsupportedError reports a dialect capability violation, such as an
// array column outside PostgreSQL.
type UnsupportedError struct {
	Dialect string
	Feature string
	Message string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	var b strings.Builder
	b.WriteString("ddlgen: ")
	b.WriteString(e.Feature)
	b.WriteString(" not supported")
	if e.Dialect != "" {
		b.WriteString(" by ")
		b.WriteString(e.Dialect)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for UnsupportedError.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// NewUnsupportedError creates a new UnsupportedError.
func NewUnsupportedError(dialect, feature, message string) *UnsupportedError {
	return &UnsupportedError{
		Dialect: dialect,
		Feature: feature,
		Message: message,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsUnsupportedError reports whether the error is an UnsupportedError.
func IsUnsupportedError(err error) bool {
	var unsupported *UnsupportedError
	return errors.As(err, &unsupported)
}
