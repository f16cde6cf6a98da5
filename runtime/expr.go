package runtime

import (
	"strings"

	"uosteam/argument"
	"uosteam/values"
)

// ExprHandler evaluates a named unary-expression predicate (e.g. `hits`,
// `dead`, `poisoned`) against the supplied arguments, returning the value
// the evaluator compares against `true`.
type ExprHandler func(args *argument.List, quiet bool) (values.Value, *values.ScriptError)

// ExprRegistry is the process-wide (host-owned) table of named expression
// handlers.
type ExprRegistry struct {
	handlers map[string]ExprHandler
}

// NewExprRegistry creates an empty expression-handler registry.
func NewExprRegistry() *ExprRegistry {
	return &ExprRegistry{handlers: make(map[string]ExprHandler)}
}

// Register binds name (case-insensitive) to handler.
func (r *ExprRegistry) Register(name string, handler ExprHandler) {
	r.handlers[strings.ToLower(name)] = handler
}

// Get looks up the handler bound to name.
func (r *ExprRegistry) Get(name string) (ExprHandler, bool) {
	h, ok := r.handlers[strings.ToLower(name)]
	return h, ok
}
