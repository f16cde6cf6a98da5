// Package argument implements the lazy typed argument view and the
// resolution chain described in : scope → handler alias → static
// alias → local-value map → literal coercion.
package argument

import (
	"uosteam/alias"
	"uosteam/ast"
	"uosteam/values"
)

// ScopeLookup is the narrow interface the evaluator's scope stack satisfies.
// It is defined here (not imported from a scope package) so that argument
// has no dependency on the concrete scope implementation, avoiding an
// import cycle: the scope package needs *Argument to store loop-variable
// bindings, so the dependency must run scope → argument, not the reverse.
type ScopeLookup interface {
	Get(name string) (*Argument, bool)
}

// Context bundles the state a single resolution needs.
type Context struct {
	Scope      ScopeLookup
	Aliases    *alias.Store
	LocalValue *alias.LocalValueMap
	// Spawn, when set, lets a command handler synthesize further single-
	// argument statements immediately after the one it is handling (e.g.
	// `walk "North,East,East"` re-enqueues "East" and "East" individually).
	// Only the evaluator's command-statement context sets this.
	Spawn func(keyword string, args []string)
}

// Argument is a lazy typed view over an AST node. Two arguments are
// equal iff their lexemes match. A virtual argument carries a literal string
// with no owning AST node — the evaluator synthesises these when it
// explodes a multi-value statement (e.g. `walk "N,E,S"`) into individual
// single-value statements.
type Argument struct {
	Node    *ast.Node
	Literal string
}

// FromNode wraps an AST node as an Argument.
func FromNode(n *ast.Node) *Argument {
	return &Argument{Node: n, Literal: n.Lexeme}
}

// Virtual creates a virtual argument carrying literal with no owning node.
func Virtual(literal string) *Argument {
	return &Argument{Literal: literal}
}

// Equal reports whether two arguments carry the same lexeme.
func (a *Argument) Equal(other *Argument) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Literal == other.Literal
}

// ResolveAs resolves this argument to a value of kind, using argName (the
// name the command's usage string declared for this position) to drive
// local-value-map rewrites. Non-string kinds consult the local-value map
// before resolution; string kinds resolve first and apply the local-value
// map to the resulting string.
func (a *Argument) ResolveAs(kind values.Kind, argName string, ctx *Context) (values.Value, *values.ScriptError) {
	tok := a.Literal

	if kind != values.KindString {
		if ctx.LocalValue != nil {
			tok = ctx.LocalValue.Rewrite(argName, tok)
		}
		if v, ok := resolveName(tok, kind, ctx); ok {
			return v, nil
		}
		return values.CoerceTo(tok, kind)
	}

	if v, ok := resolveName(tok, kind, ctx); ok {
		s, ok := v.(values.Str)
		if !ok {
			return nil, values.NewTypeConversionError("alias \"" + tok + "\" is not a string")
		}
		if ctx.LocalValue != nil {
			s = values.NewStr(ctx.LocalValue.Rewrite(argName, s.Val))
		}
		return s, nil
	}

	coerced, err := values.CoerceTo(tok, kind)
	if err != nil {
		return nil, err
	}
	if ctx.LocalValue != nil {
		s := coerced.(values.Str)
		coerced = values.NewStr(ctx.LocalValue.Rewrite(argName, s.Val))
	}
	return coerced, nil
}

// resolveName implements the first three resolution steps — scope, then
// handler alias, then static alias — for a bare token. It does not touch
// the local-value map or literal coercion; callers layer those per their
// kind-specific order.
func resolveName(tok string, kind values.Kind, ctx *Context) (values.Value, bool) {
	if ctx.Scope != nil {
		if bound, ok := ctx.Scope.Get(tok); ok {
			if v, err := bound.ResolveAs(kind, "", ctx); err == nil {
				return v, true
			}
		}
	}
	if ctx.Aliases != nil {
		if v, ok := ctx.Aliases.Resolve(kind, tok); ok {
			return v, true
		}
	}
	return nil, false
}
