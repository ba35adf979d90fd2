package query

import (
	"fmt"

	"github.com/pkg/errors"
)

// AggregateFunc is one of the built-in reductions
type AggregateFunc int

const (
	AggregateAvg AggregateFunc = iota + 1
	AggregateMin
	AggregateMax
)

var aggregateNames = map[AggregateFunc]string{
	AggregateAvg: "avg",
	AggregateMin: "min",
	AggregateMax: "max",
}

// ErrEmptySequence is returned by min and max over no values
var ErrEmptySequence = errors.New("arg is an empty sequence")

// ParseAggregateFunc resolves a function name such as "avg"
func ParseAggregateFunc(name string) (AggregateFunc, error) {
	for fn, n := range aggregateNames {
		if n == name {
			return fn, nil
		}
	}
	return 0, &UnknownAggregateFunctionError{Name: name}
}

// AggregateFuncNames lists the supported function names in declaration order
func AggregateFuncNames() []string {
	return []string{
		AggregateAvg.String(),
		AggregateMin.String(),
		AggregateMax.String(),
	}
}

func (f AggregateFunc) String() string {
	if name, ok := aggregateNames[f]; ok {
		return name
	}
	return fmt.Sprintf("AggregateFunc(%d)", int(f))
}

// Compute reduces values to a single number.
// avg of no values is 0; min and max of no values fail with ErrEmptySequence.
func (f AggregateFunc) Compute(values []float64) (float64, error) {
	switch f {
	case AggregateAvg:
		if len(values) == 0 {
			return 0, nil
		}
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values)), nil
	case AggregateMin, AggregateMax:
		if len(values) == 0 {
			return 0, errors.Wrap(ErrEmptySequence, f.String())
		}
		result := values[0]
		for _, v := range values[1:] {
			if (f == AggregateMin && v < result) || (f == AggregateMax && v > result) {
				result = v
			}
		}
		return result, nil
	default:
		return 0, &UnknownAggregateFunctionError{Name: f.String()}
	}
}

// Aggregate reduces one column to a single value.
//
// The operand names the function ("avg", "min", "max"); the operator is
// ignored. The result has one row and one column named after the function.
type Aggregate struct{}

// Apply aggregates column across ds
func (Aggregate) Apply(ds *Dataset, column string, operand interface{}, _ string) (*Dataset, error) {
	values := make([]float64, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		value, exists := row[column]
		if !exists {
			return nil, &MissingKeyError{Column: column}
		}
		num, ok := value.(float64)
		if !ok {
			return nil, &TypeMismatchError{Operator: "+", Left: float64(0), Right: value}
		}
		values = append(values, num)
	}

	name, ok := operand.(string)
	if !ok {
		return nil, &UnknownAggregateFunctionError{Name: fmt.Sprint(operand)}
	}
	fn, err := ParseAggregateFunc(name)
	if err != nil {
		return nil, err
	}

	result, err := fn.Compute(values)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Columns: []string{name},
		Rows:    []Row{{name: result}},
	}, nil
}
