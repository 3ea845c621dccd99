package datefmt

import (
	"fmt"
)

// SentinelError is an error.
type SentinelError string

const (
	// ErrInvalidPattern indicates a pattern that can not be compiled into a formatter.
	ErrInvalidPattern = SentinelError("invalid date pattern")

	// ErrUnparseable indicates input that does not match formatter pattern.
	ErrUnparseable = SentinelError("unparseable date")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}

// ConstructionError describes a pattern rejected at formatter construction.
type ConstructionError struct {
	Pattern string
	Offset  int
	Reason  string
}

// Error implements error.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s %q at offset %d: %s", ErrInvalidPattern, e.Pattern, e.Offset, e.Reason)
}

// Is matches ErrInvalidPattern.
func (e *ConstructionError) Is(err error) bool {
	return err == ErrInvalidPattern
}

// ParseError describes input that failed to parse, it carries both the input and the pattern.
type ParseError struct {
	Input   string
	Pattern string
	Offset  int
	Reason  string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q with pattern %q at offset %d: %s", ErrUnparseable, e.Input, e.Pattern, e.Offset, e.Reason)
}

// Is matches ErrUnparseable.
func (e *ParseError) Is(err error) bool {
	return err == ErrUnparseable
}
