package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrFileOp ErrorType = iota
	ErrDecompress
	ErrDecode
	ErrSignature
	ErrInvalidConfig
	ErrLintFailed
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrFileOp:
		return "FileOp"
	case ErrDecompress:
		return "Decompress"
	case ErrDecode:
		return "Decode"
	case ErrSignature:
		return "Signature"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrLintFailed:
		return "LintFailed"
	default:
		return "Unknown"
	}
}

// KomodoError represents an error while loading, verifying or linting komodo
// files
type KomodoError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *KomodoError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *KomodoError) Unwrap() error {
	return e.Err
}
