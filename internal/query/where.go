package query

// Comparison operators understood by Where
const (
	OpEqual   = "="
	OpLess    = "<"
	OpGreater = ">"
)

// Where keeps the rows whose column compares true against the operand.
//
// "=" is typed equality and never fails. "<" and ">" fail with a
// TypeMismatchError when a float meets a string. Any other operator matches
// nothing and yields an empty dataset.
type Where struct{}

// Apply filters ds. A row without column fails with MissingKeyError.
func (Where) Apply(ds *Dataset, column string, operand interface{}, operator string) (*Dataset, error) {
	result := &Dataset{Columns: ds.Columns, Rows: make([]Row, 0)}

	switch operator {
	case OpEqual, OpLess, OpGreater:
	default:
		return result, nil
	}

	for _, row := range ds.Rows {
		value, exists := row[column]
		if !exists {
			return nil, &MissingKeyError{Column: column}
		}

		match, err := compare(value, operator, operand)
		if err != nil {
			return nil, err
		}
		if match {
			result.Rows = append(result.Rows, row)
		}
	}

	return result, nil
}

// compare compares two values using the given operator
func compare(left interface{}, operator string, right interface{}) (bool, error) {
	if operator == OpEqual {
		return equal(left, right), nil
	}

	// Try numeric comparison
	leftNum, leftIsNum := left.(float64)
	rightNum, rightIsNum := right.(float64)
	if leftIsNum && rightIsNum {
		return compareNumbers(leftNum, operator, rightNum), nil
	}

	// Try string comparison
	leftStr, leftIsStr := left.(string)
	rightStr, rightIsStr := right.(string)
	if leftIsStr && rightIsStr {
		return compareStrings(leftStr, operator, rightStr), nil
	}

	// Type mismatch
	return false, &TypeMismatchError{Operator: operator, Left: left, Right: right}
}

// equal is typed equality: values of different types are never equal
func equal(left, right interface{}) bool {
	switch l := left.(type) {
	case float64:
		r, ok := right.(float64)
		return ok && l == r
	case string:
		r, ok := right.(string)
		return ok && l == r
	default:
		return false
	}
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator string, right float64) bool {
	switch operator {
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive, byte order)
func compareStrings(left string, operator string, right string) bool {
	switch operator {
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	default:
		return false
	}
}
