package query

import (
	"fmt"
	"strings"
)

// Messages carried by ValidCommandError
const (
	MsgMissingParameter = "Missing parameter"
	MsgCheckType        = "Wrong data to compare. Check the type"
)

// InvalidExpressionError is returned when an expression does not match the
// column/operator/value grammar.
type InvalidExpressionError struct {
	Expression string
	Reason     string
}

func (e *InvalidExpressionError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = `Invalid command pattern, correct is - "command=parameter"`
	}
	return fmt.Sprintf("%s - %s", e.Expression, reason)
}

// ValidCommandError is returned when a well-formed command refers to a
// missing column or mixes incompatible types.
type ValidCommandError struct {
	Command string // MsgMissingParameter or MsgCheckType
	Message string
	Err     error
}

func (e *ValidCommandError) Error() string {
	return fmt.Sprintf("%s - %s", e.Command, e.Message)
}

func (e *ValidCommandError) Unwrap() error {
	return e.Err
}

// RequiredArgumentsError is returned when the command line lacks the
// arguments needed to run.
type RequiredArgumentsError struct {
	Commands []string
}

func (e *RequiredArgumentsError) Error() string {
	return fmt.Sprintf("Invalid arguments passed, possible list - [%s]", strings.Join(e.Commands, ", "))
}

// UnknownYetError wraps a failure the classifier does not recognize.
// It signals a bug rather than bad input.
type UnknownYetError struct {
	Operation string
	Err       error
}

func (e *UnknownYetError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unexpected failure in operation %q", e.Operation)
	}
	return fmt.Sprintf("unexpected failure in operation %q: %v", e.Operation, e.Err)
}

func (e *UnknownYetError) Unwrap() error {
	return e.Err
}

// MissingKeyError is raised by operations when a row lacks the requested column
type MissingKeyError struct {
	Column string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("'%s'", e.Column)
}

// TypeMismatchError is raised when two values of incompatible types are compared
type TypeMismatchError struct {
	Operator string
	Left     interface{}
	Right    interface{}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("'%s' not supported between instances of '%s' and '%s'",
		e.Operator, typeName(e.Left), typeName(e.Right))
}

// UnknownAggregateFunctionError is raised when an aggregate function name is
// not one of avg, min, max.
type UnknownAggregateFunctionError struct {
	Name string
}

func (e *UnknownAggregateFunctionError) Error() string {
	return fmt.Sprintf("unknown aggregate function %q, expected one of [%s]",
		e.Name, strings.Join(AggregateFuncNames(), ", "))
}

// typeName names the dynamic type of a row value
func typeName(v interface{}) string {
	switch v.(type) {
	case float64:
		return "float"
	case string:
		return "str"
	case nil:
		return "none"
	default:
		return fmt.Sprintf("%T", v)
	}
}
