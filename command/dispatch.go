package command

import (
	"strings"

	"uosteam/argument"
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

// Result is what Dispatch reports back to the evaluator.
type Result struct {
	// Consumed reports whether the evaluator should advance past this
	// statement. When false (cooldown not yet elapsed), the cursor stays
	// put and the next tick retries.
	Consumed bool
	// Err is set when the statement produced an error that was not fully
	// absorbed by printing usage/keyword text — it is a RunTime or
	// TypeConversion error the caller must propagate unless quiet.
	Err *values.ScriptError
}

// StripModifiers removes a leading `@`/`!` pair (in either order) from
// keyword, returning the bare keyword and the flags they set.
func StripModifiers(keyword string) (string, Flags) {
	var f Flags
	for {
		switch {
		case strings.HasPrefix(keyword, "@"):
			f.Quiet = true
			keyword = keyword[1:]
		case strings.HasPrefix(keyword, "!"):
			f.Force = true
			keyword = keyword[1:]
		default:
			return keyword, f
		}
	}
}

// Dispatch runs the full command-dispatch sequence for one COMMAND
// statement: modifier stripping is assumed already done by the caller (the
// evaluator resolves QUIET/FORCE wrapper nodes before reaching here), so
// flags are passed in directly.
func Dispatch(reg *Registry, rt *runtime.Runtime, sink host.Sink, keyword string, flags Flags, rawArgs []*argument.Argument, ctx *argument.Context) Result {
	def, ok := reg.Get(keyword)
	if !ok {
		err := values.NewRunTimeError("Command is not defined", nil)
		if flags.Quiet {
			return Result{Consumed: true}
		}
		return Result{Consumed: true, Err: err}
	}

	if len(rawArgs) < def.MandatoryCount() {
		if sink != nil {
			sink.Print(def.Usage, host.System)
		}
		return Result{Consumed: true}
	}

	now := rt.Clock.NowTicks()
	if !cooldownElapsed(reg, def, now) {
		return Result{Consumed: false}
	}

	list := argument.NewList(rawArgs, def.MandatoryCount(), def.ExpectedNames(), ctx)
	err := def.Handler(rt, list, flags)
	rt.ClearTimeout()

	if err == nil {
		markExecuted(reg, def, now)
		return Result{Consumed: true}
	}

	switch err.Kind {
	case values.CommandError:
		if sink != nil {
			sink.Print(def.Keyword+": "+err.Message, host.System)
		}
		return Result{Consumed: true}
	case values.SyntaxError:
		if sink != nil {
			sink.Print(def.Usage, host.System)
		}
		return Result{Consumed: true}
	default: // RunTime, TypeConversion
		if flags.Quiet {
			return Result{Consumed: true}
		}
		return Result{Consumed: true, Err: err}
	}
}

func cooldownElapsed(reg *Registry, def *Definition, now uint64) bool {
	if last, ok := reg.lastExecCmd[strings.ToLower(def.Keyword)]; ok {
		if now-last < def.WaitMs {
			return false
		}
	}
	if def.Group != GroupNone {
		if last, ok := reg.lastGroup[def.Group]; ok {
			if now-last < def.WaitMs {
				return false
			}
		}
	}
	return true
}

func markExecuted(reg *Registry, def *Definition, now uint64) {
	reg.lastExecCmd[strings.ToLower(def.Keyword)] = now
	if def.Group != GroupNone {
		reg.lastGroup[def.Group] = now
	}
}
