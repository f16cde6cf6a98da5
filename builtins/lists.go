package builtins

import (
	"uosteam/argument"
	"uosteam/command"
	"uosteam/runtime"
	"uosteam/values"
)

// RegisterLists wires createlist/removelist/clearlist/pushlist/poplist
// directly against runtime.ListStore.
func RegisterLists(reg *command.Registry) {
	reg.Register(command.NewDefinition("createlist (name)", 0, command.GroupNone,
		func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
			name, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			rt.Lists.Create(name.(values.Str).Val)
			return nil
		}))

	reg.Register(command.NewDefinition("removelist (name)", 0, command.GroupNone,
		func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
			name, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			rt.Lists.Destroy(name.(values.Str).Val)
			return nil
		}))

	reg.Register(command.NewDefinition("clearlist (name)", 0, command.GroupNone,
		func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
			name, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			rt.Lists.Clear(name.(values.Str).Val)
			return nil
		}))

	reg.Register(command.NewDefinition("pushlist (name) (value) [position]", 0, command.GroupNone,
		func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
			name, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			value, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			position, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			v := argument.Virtual(value.(values.Str).Val)
			if position.(values.Str).Val == "front" {
				rt.Lists.PushFront(name.(values.Str).Val, v, f.Force)
			} else {
				rt.Lists.PushBack(name.(values.Str).Val, v, f.Force)
			}
			return nil
		}))

	reg.Register(command.NewDefinition("poplist (name) [position]", 0, command.GroupNone,
		func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
			name, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			listName := name.(values.Str).Val

			if f.Force {
				rt.Lists.DrainAll(listName)
				return nil
			}

			position, err := args.NextAs(values.KindString)
			if err != nil {
				return err
			}
			switch position.(values.Str).Val {
			case "front":
				rt.Lists.PopFront(listName)
			case "back":
				rt.Lists.PopBack(listName)
			default:
				rt.Lists.PopValue(listName, argument.Virtual(position.(values.Str).Val))
			}
			return nil
		}))
}
