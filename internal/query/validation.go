package query

import (
	"fmt"

	"github.com/pkg/errors"
)

// Validation limits for user supplied expressions
const (
	// MaxExpressionLength is the maximum allowed expression length (64KB)
	MaxExpressionLength = 64 * 1024

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

var (
	// ErrExpressionTooLong is returned when an expression exceeds MaxExpressionLength
	ErrExpressionTooLong = errors.New("expression too long")

	// ErrColumnNameTooLong is returned when a column name exceeds MaxColumnNameLength
	ErrColumnNameTooLong = errors.New("column name too long")
)

// ValidateExpression checks the raw expression length
func ValidateExpression(command string) error {
	if len(command) > MaxExpressionLength {
		return errors.Wrap(ErrExpressionTooLong, fmt.Sprintf("%d bytes (max %d)", len(command), MaxExpressionLength))
	}
	return nil
}

// ValidateColumnName validates column name length
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return errors.Wrap(ErrColumnNameTooLong, fmt.Sprintf("%d chars (max %d)", len(name), MaxColumnNameLength))
	}
	return nil
}
