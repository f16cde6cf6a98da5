package command

import (
	"uosteam/argument"
	"uosteam/runtime"
	"uosteam/values"
)

// Flags carries the `@`/`!` statement modifiers into a handler.
type Flags struct {
	Quiet bool
	Force bool
}

// Handler implements a built-in command's domain behavior. A non-nil
// returned error is classified by Dispatch/: SyntaxError
// prints usage, CommandError prints "keyword: message", everything else
// (RunTime/TypeConversion) propagates unless flags.Quiet is set.
type Handler func(rt *runtime.Runtime, args *argument.List, flags Flags) *values.ScriptError

// Definition is a registered command.
type Definition struct {
	Keyword string
	Usage   string
	WaitMs  uint64
	Group   Group
	Handler Handler

	parsed parsedUsage
}

// NewDefinition parses usage once at registration time and binds handler.
func NewDefinition(usage string, waitMs uint64, group Group, handler Handler) *Definition {
	p := parseUsage(usage)
	return &Definition{
		Keyword: p.keyword,
		Usage:   usage,
		WaitMs:  waitMs,
		Group:   group,
		Handler: handler,
		parsed:  p,
	}
}

// MandatoryCount is the number of `(name)` positions the usage string
// declared.
func (d *Definition) MandatoryCount() int { return d.parsed.mandatoryCount }

// ExpectedNames is the ordered list of argument names the usage string
// declared, mandatory and optional alike.
func (d *Definition) ExpectedNames() []string { return d.parsed.expectedNames }
