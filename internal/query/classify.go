package query

import (
	"fmt"

	"github.com/pkg/errors"
)

// Classify runs fn and maps its failure onto the error taxonomy.
//
// A MissingKeyError becomes a ValidCommandError "Missing parameter", a
// TypeMismatchError or UnknownAggregateFunctionError becomes a
// ValidCommandError "Check the type", and anything else, including a panic,
// becomes an UnknownYetError.
func Classify(name string, fn func() (*Dataset, error)) (result *Dataset, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &UnknownYetError{Operation: name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	result, err = fn()
	if err == nil {
		return result, nil
	}
	return nil, classifyError(name, err)
}

func classifyError(name string, err error) error {
	var missing *MissingKeyError
	if errors.As(err, &missing) {
		return &ValidCommandError{Command: MsgMissingParameter, Message: missing.Error(), Err: err}
	}

	var mismatch *TypeMismatchError
	if errors.As(err, &mismatch) {
		return &ValidCommandError{Command: MsgCheckType, Message: mismatch.Error(), Err: err}
	}

	var unknownFn *UnknownAggregateFunctionError
	if errors.As(err, &unknownFn) {
		return &ValidCommandError{Command: MsgCheckType, Message: unknownFn.Error(), Err: err}
	}

	return &UnknownYetError{Operation: name, Err: err}
}
