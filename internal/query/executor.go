package query

import (
	"log/slog"
)

// Executor runs requested operations over a dataset
type Executor struct {
	registry *Registry
	logger   *slog.Logger
}

// NewExecutor creates an executor bound to a registry
func NewExecutor(registry *Registry, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{registry: registry, logger: logger}
}

// Run applies every registered operation that has a non-empty expression in
// requested. Operations run in registry order regardless of the order the
// user gave them. The first failure aborts the run and no partial result is
// returned.
func (e *Executor) Run(requested CommandRequest, ds *Dataset) (*Dataset, error) {
	for _, name := range e.registry.Names() {
		command, ok := requested[name]
		if !ok || command == "" {
			continue
		}

		expr, err := Parse(command)
		if err != nil {
			return nil, err
		}

		op, _ := e.registry.Lookup(name)
		in := ds
		e.logger.Debug("applying operation",
			"operation", name,
			"column", expr.Column,
			"operator", expr.Operator,
			"value", expr.Value,
			"rows_in", in.Len())

		ds, err = Classify(name, func() (*Dataset, error) {
			return op.Apply(in, expr.Column, expr.Value, expr.Operator)
		})
		if err != nil {
			e.logger.Debug("operation failed", "operation", name, "error", err)
			return nil, err
		}

		e.logger.Debug("operation applied", "operation", name, "rows_out", ds.Len())
	}

	return ds, nil
}
