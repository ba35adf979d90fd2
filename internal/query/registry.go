package query

import (
	"log/slog"
)

// Names of the built-in operations
const (
	OperationWhere     = "where"
	OperationAggregate = "aggregate"
)

// Registry is an ordered mapping from operation name to Operation.
//
// Insertion order is execution order. Entries can be added or replaced but
// never removed. A Registry is not safe for concurrent mutation; configure it
// before running a pipeline.
type Registry struct {
	names  []string
	ops    map[string]Operation
	logger *slog.Logger
}

// NewRegistry creates a registry holding where and aggregate
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		ops:    make(map[string]Operation),
		logger: logger,
	}
	r.insert(OperationWhere, Where{})
	r.insert(OperationAggregate, Aggregate{})
	return r
}

func (r *Registry) insert(name string, op Operation) {
	r.names = append(r.names, name)
	r.ops[name] = op
}

// Register adds op under name if the name is free.
// It returns false, and logs a warning, when the name already exists.
func (r *Registry) Register(name string, op Operation) bool {
	if _, exists := r.ops[name]; exists {
		r.logger.Warn("operation already exists, use Replace to change it", "operation", name)
		return false
	}
	r.insert(name, op)
	r.logger.Info("operation registered", "operation", name)
	return true
}

// Replace swaps the implementation of an existing operation.
// It returns false, and logs a warning, when the name is unknown.
func (r *Registry) Replace(name string, op Operation) bool {
	if _, exists := r.ops[name]; !exists {
		r.logger.Warn("operation does not exist, use Register to add it", "operation", name)
		return false
	}
	r.ops[name] = op
	r.logger.Info("operation replaced", "operation", name)
	return true
}

// SetLogger changes where registration outcomes are reported
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Lookup returns the operation registered under name
func (r *Registry) Lookup(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Names returns operation names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
