// Package query implements the csvq command engine.
//
// It parses compact "column<operator><value>" expressions, keeps an ordered
// registry of row operations (where, aggregate), and runs the requested
// operations over a Dataset in registry order, translating failures into a
// small typed error taxonomy.
//
// Example usage:
//
//	registry := query.NewRegistry(logger)
//	executor := query.NewExecutor(registry, logger)
//	result, err := executor.Run(query.CommandRequest{"where": "price>300"}, ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
package query

import "sort"

// Row is one decoded record. Values are either float64 or string.
type Row = map[string]interface{}

// Dataset is an ordered sequence of rows sharing one column set.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// NewDataset creates a dataset from columns and rows
func NewDataset(columns []string, rows []Row) *Dataset {
	return &Dataset{Columns: columns, Rows: rows}
}

// Len returns the number of rows, treating a nil dataset as empty
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// IsEmpty reports whether the dataset has no rows
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Expression is a parsed "column<operator><value>" triple.
//
// Value is float64 when the raw text parses as a number, string otherwise.
type Expression struct {
	Column   string
	Operator string
	Value    interface{}
}

// CommandRequest maps an operation name to its raw expression string
type CommandRequest map[string]string

// Operation transforms a dataset.
//
// Implementations must not mutate ds; they either return a new dataset or
// an error. For aggregate-like operations the operand carries the function
// name and operator may be ignored.
type Operation interface {
	Apply(ds *Dataset, column string, operand interface{}, operator string) (*Dataset, error)
}

// OperationFunc adapts an ordinary function to the Operation interface
type OperationFunc func(ds *Dataset, column string, operand interface{}, operator string) (*Dataset, error)

// Apply calls f(ds, column, operand, operator)
func (f OperationFunc) Apply(ds *Dataset, column string, operand interface{}, operator string) (*Dataset, error) {
	return f(ds, column, operand, operator)
}

// GetColumnNames returns the column names of a dataset
func GetColumnNames(ds *Dataset) []string {
	if ds == nil {
		return nil
	}
	if len(ds.Columns) > 0 {
		return ds.Columns
	}
	if len(ds.Rows) == 0 {
		return nil
	}

	columns := make([]string, 0, len(ds.Rows[0]))
	for col := range ds.Rows[0] {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}
