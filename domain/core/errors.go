package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Path resolution errors
	ErrNotFound         = errors.New("file not found")
	ErrSandboxViolation = errors.New("path escapes the data directory")

	// Loader errors
	ErrParse = errors.New("malformed CSV")

	// Analysis errors
	ErrColumnNotFound    = errors.New("column not found")
	ErrNonNumericColumn  = errors.New("column is not numeric")
	ErrInvalidColumns    = errors.New("non-numeric or missing columns requested")
	ErrNoNumericColumns  = errors.New("no numeric columns available")
	ErrUnsupportedMethod = errors.New("unsupported method")
)

// Error constructors with context
func NewNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

func NewSandboxViolationError(path string) error {
	return fmt.Errorf("%w: %s", ErrSandboxViolation, path)
}

func NewParseError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrParse, path, cause)
}

func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

func NewNonNumericColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrNonNumericColumn, column)
}

func NewInvalidColumnsError(columns []string) error {
	return fmt.Errorf("%w: %s", ErrInvalidColumns, strings.Join(columns, ", "))
}

func NewUnsupportedMethodError(method string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsSandboxViolation(err error) bool {
	return errors.Is(err, ErrSandboxViolation)
}

func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}
