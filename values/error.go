package values

import "fmt"

// ErrorKind is the four-variant error taxonomy from .
type ErrorKind int

const (
	// SyntaxError: command used wrong; triggers a usage-string printout.
	SyntaxError ErrorKind = iota
	// CommandError: domain failure (e.g. "item not found").
	CommandError
	// TypeConversion: coercion failed. A subtype of RunTime.
	TypeConversion
	// RunTime: evaluator invariant violations (unmatched endif, unknown
	// command, invalid expression).
	RunTime
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case CommandError:
		return "CommandError"
	case TypeConversion:
		return "TypeConversion"
	case RunTime:
		return "RunTime"
	default:
		return "UnknownError"
	}
}

// IsRunTime reports whether this error kind propagates as a RunTime error
// (i.e. is swallowed by a `quiet` modifier). TypeConversion is a RunTime
// subtype.
func (k ErrorKind) IsRunTime() bool {
	return k == RunTime || k == TypeConversion
}

// ScriptError is the error type every script-visible failure takes. Node is
// set for RunTime errors raised against a specific AST node (e.g. an
// unmatched loop terminator) and is nil otherwise.
type ScriptError struct {
	Kind    ErrorKind
	Keyword string // command keyword, for CommandError's "keyword: message"
	Message string
	Node    any // *ast.Node; kept as any to avoid an import cycle with ast
}

func (e *ScriptError) Error() string {
	if e.Keyword != "" {
		return fmt.Sprintf("%s: %s", e.Keyword, e.Message)
	}
	return e.Message
}

// NewSyntaxError builds a SyntaxError carrying the command's usage string.
func NewSyntaxError(usage string) *ScriptError {
	return &ScriptError{Kind: SyntaxError, Message: usage}
}

// NewCommandError builds a CommandError for a specific command keyword.
func NewCommandError(keyword, message string) *ScriptError {
	return &ScriptError{Kind: CommandError, Keyword: keyword, Message: message}
}

// NewTypeConversionError builds a TypeConversion error.
func NewTypeConversionError(message string) *ScriptError {
	return &ScriptError{Kind: TypeConversion, Message: message}
}

// NewRunTimeError builds a RunTime error, optionally against an offending
// node.
func NewRunTimeError(message string, node any) *ScriptError {
	return &ScriptError{Kind: RunTime, Message: message, Node: node}
}
