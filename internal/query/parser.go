package query

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse splits a command such as "price>300" into column, operator and value.
//
// The operator is the first character that is neither an ASCII letter, an
// ASCII digit nor whitespace. Everything before it is the column and
// everything after it is the value, both trimmed. The value is converted to
// float64 when it parses as a number. Operators are a single character, so
// "price>=300" yields operator ">" and value "=300".
func Parse(command string) (Expression, error) {
	if err := ValidateExpression(command); err != nil {
		return Expression{}, &InvalidExpressionError{Expression: truncate(command), Reason: err.Error()}
	}

	idx := operatorIndex(command)
	if idx < 0 {
		return Expression{}, &InvalidExpressionError{Expression: command}
	}

	column := strings.TrimSpace(command[:idx])
	if err := ValidateColumnName(column); err != nil {
		return Expression{}, &InvalidExpressionError{Expression: truncate(command), Reason: err.Error()}
	}

	_, size := utf8.DecodeRuneInString(command[idx:])
	raw := strings.TrimSpace(command[idx+size:])

	return Expression{
		Column:   column,
		Operator: command[idx : idx+size],
		Value:    Coerce(raw),
	}, nil
}

// operatorIndex returns the byte offset of the operator, or -1
func operatorIndex(command string) int {
	for i, r := range command {
		if isASCIIAlnum(r) || unicode.IsSpace(r) {
			continue
		}
		return i
	}
	return -1
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Coerce converts numeric text to float64 and leaves anything else as the
// original string. Surrounding whitespace is ignored for the numeric test.
func Coerce(s string) interface{} {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	return s
}

func truncate(s string) string {
	const limit = 64
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
