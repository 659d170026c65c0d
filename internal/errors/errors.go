// Package errors provides standardized error handling for the FuzzyFont
// application. It defines common error types, constants, and helper
// functions for consistent error creation, wrapping, and handling across
// the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Discovery error kinds
	DiscoveryFailed
	NoFontSource
	// Export error kinds
	ExportWriteFailed
	InvalidFormat
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Session error kinds
	InvalidSelection
)

// ErrNoFontSource is returned by discovery when no enumeration source is
// usable at all. Finding zero fonts in a usable source is not this error.
var ErrNoFontSource = NewDiscoveryError("no usable font source", "", NoFontSource, nil)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// DiscoveryError represents errors raised by the font discovery layer.
// Finding zero fonts is not a DiscoveryError; only the absence of any
// usable source is.
type DiscoveryError struct {
	ApplicationError
	source string
}

// NewDiscoveryError creates a new discovery error
func NewDiscoveryError(msg string, source string, kind ErrorKind, err error) *DiscoveryError {
	return &DiscoveryError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		source: source,
	}
}

// Error returns the discovery error message
func (e *DiscoveryError) Error() string {
	if e.source != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.source, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.source)
	}
	return e.ApplicationError.Error()
}

// Source returns the discovery source associated with the error
func (e *DiscoveryError) Source() string {
	return e.source
}

// ExportError represents errors related to writing an exported catalog
// view. Producing export content never fails; only the destination write
// can.
type ExportError struct {
	ApplicationError
	path string
}

// NewExportError creates a new export error
func NewExportError(msg string, path string, kind ErrorKind, err error) *ExportError {
	return &ExportError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the export error message
func (e *ExportError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the destination path associated with the error
func (e *ExportError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// SelectionError represents an invalid interactive filter selection. It is
// always recovered locally: the selection prompt repeats.
type SelectionError struct {
	ApplicationError
	input string
}

// NewSelectionError creates a new selection error
func NewSelectionError(msg string, input string) *SelectionError {
	return &SelectionError{
		ApplicationError: ApplicationError{
			msg:  msg,
			kind: InvalidSelection,
		},
		input: input,
	}
}

// Error returns the selection error message
func (e *SelectionError) Error() string {
	if e.input != "" {
		return fmt.Sprintf("%s: %q", e.msg, e.input)
	}
	return e.ApplicationError.Error()
}

// Input returns the rejected selection input
func (e *SelectionError) Input() string {
	return e.input
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsDiscoveryFailure checks if the error is a fatal discovery error
func IsDiscoveryFailure(err error) bool {
	var discErr *DiscoveryError
	if errors.As(err, &discErr) {
		return discErr.Kind() == DiscoveryFailed || discErr.Kind() == NoFontSource
	}
	return false
}

// IsExportWriteFailure checks if the error is an export write error
func IsExportWriteFailure(err error) bool {
	var expErr *ExportError
	if errors.As(err, &expErr) {
		return expErr.Kind() == ExportWriteFailed
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsInvalidSelection checks if the error is an invalid selection error
func IsInvalidSelection(err error) bool {
	var selErr *SelectionError
	return errors.As(err, &selErr)
}
