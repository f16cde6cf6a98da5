package builtins

import (
	"uosteam/command"
	"uosteam/host"
	"uosteam/runtime"
)

// Setup wires every built-in command, expression handler, and dynamic alias
// into reg/rt against caps, the single boot step a host takes before driving
// any script. Callers (cmd/uosteam, conformance) build a Runtime and
// command.Registry, construct caps against their own host stubs, then call
// Setup once before driving any script.
func Setup(reg *command.Registry, rt *runtime.Runtime, caps host.Capabilities) *State {
	st := NewState()
	RegisterAliases(rt.Aliases, caps, st)
	RegisterExpressions(rt.Expressions, caps, rt.Lists, rt.Timers)
	RegisterLists(reg)
	RegisterTimers(reg)
	RegisterCommands(reg, caps, st)
	return st
}
