// Package apperrors provides domain-specific error types for the fact application.
// These error types include contextual information to aid debugging and error reporting.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is by callers that only care about the category.
var (
	ErrNegativeInput = errors.New("factorial is not defined for negative numbers")
	ErrInputRange    = errors.New("input exceeds the configured maximum")
	ErrOverflow      = errors.New("integer overflow")
)

// ConfigurationError represents configuration-related errors.
// It includes the configuration file path and specific key that caused the error.
type ConfigurationError struct {
	ConfigPath string // Path to the configuration file
	Key        string // Configuration key that caused the error
	Err        error  // Underlying error
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error in %s (key: %s): %v", e.ConfigPath, e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %v", e.ConfigPath, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InputError represents a token that could not be turned into an integer.
// Token is empty when the input stream ended before any token was read.
type InputError struct {
	Token string // Raw token as read from the user
	Err   error  // Underlying parse or read error
}

// Error implements the error interface for InputError.
func (e *InputError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("no integer provided: %v", e.Err)
	}
	return fmt.Sprintf("input %q is not an integer: %v", e.Token, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *InputError) Unwrap() error {
	return e.Err
}

// NegativeInputError is returned when the factorial of a negative number is requested.
type NegativeInputError struct {
	N int64
}

// Error implements the error interface for NegativeInputError.
func (e *NegativeInputError) Error() string {
	return fmt.Sprintf("invalid input %d: %v", e.N, ErrNegativeInput)
}

// Unwrap returns ErrNegativeInput.
func (e *NegativeInputError) Unwrap() error {
	return ErrNegativeInput
}

// InputRangeError is returned when the input is above the configured recursion ceiling.
type InputRangeError struct {
	N   int64
	Max int64
}

// Error implements the error interface for InputRangeError.
func (e *InputRangeError) Error() string {
	return fmt.Sprintf("invalid input %d: %v (max: %d)", e.N, ErrInputRange, e.Max)
}

// Unwrap returns ErrInputRange.
func (e *InputRangeError) Unwrap() error {
	return ErrInputRange
}

// OverflowError reports that n! does not fit in a signed integer of Bits width.
type OverflowError struct {
	N    int64 // Requested input
	Bits int   // Width of the result type (32 or 64)
}

// Error implements the error interface for OverflowError.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%d! does not fit in a %d-bit signed integer: %v", e.N, e.Bits, ErrOverflow)
}

// Unwrap returns ErrOverflow.
func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
