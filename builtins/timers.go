package builtins

import (
	"uosteam/argument"
	"uosteam/command"
	"uosteam/runtime"
	"uosteam/values"
)

// RegisterTimers wires createtimer/removetimer/timer directly against
// runtime.TimerStore. The timer's own elapsed-ticks readout and existence
// check are expressions (`timer`, `timerexists`), registered alongside the
// other condition expressions in RegisterExpressions.
func RegisterTimers(reg *command.Registry) {
	reg.Register(command.NewDefinition("createtimer (name)", 0, command.GroupNone,
		func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
			name, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			rt.Timers.Create(name.(values.Str).Val)
			return nil
		}))

	reg.Register(command.NewDefinition("removetimer (name)", 0, command.GroupNone,
		func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
			name, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			rt.Timers.Remove(name.(values.Str).Val)
			return nil
		}))

	reg.Register(command.NewDefinition("timer (name) (action) [ms]", 0, command.GroupNone,
		func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
			name, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			action, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			switch action.(values.Str).Val {
			case "create":
				rt.Timers.Create(name.(values.Str).Val)
			case "set":
				ms, err := args.NextAs(values.KindInt)
				if err != nil {
					return err
				}
				rt.Timers.Set(name.(values.Str).Val, uint64(ms.(values.Int).Val))
			default:
				return values.NewSyntaxError("timer (name) create|set [ms]")
			}
			return nil
		}))
}
