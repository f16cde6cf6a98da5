package builtins

import (
	"uosteam/argument"
	"uosteam/command"
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

// Cooldown/group constants for the built-in command set. Drag-and-drop
// commands share the PickUp group; double-click commands share DClick;
// everything else observes only its own per-command wait.
const (
	waitDefault = 250
	waitPickUp  = 1000
	waitDClick  = 1000
)

// bandageGraphic is the item graphic ID for a roll of clean bandages.
const bandageGraphic = 0x0E21

// RegisterCommands wires the built-in command set against caps, st
// (cross-statement bookkeeping), and rt's list/timer/alias stores. This is
// the bulk of the built-in surface; createlist/removelist/clearlist/
// pushlist/poplist are registered separately by RegisterLists since they
// only ever touch rt.Lists and need no host capability.
func RegisterCommands(reg *command.Registry, caps host.Capabilities, st *State) {
	reg.Register(command.NewDefinition("setability (ability)", waitDefault, command.GroupNone,
		cmdSetAbility(caps)))
	reg.Register(command.NewDefinition("attack (serial)", waitDefault, command.GroupNone,
		cmdAttack(caps, st)))
	reg.Register(command.NewDefinition("clearhands (hand)", waitPickUp, command.GroupPickUp,
		cmdClearHands(caps)))
	reg.Register(command.NewDefinition("togglehands (hand)", waitPickUp, command.GroupPickUp,
		cmdToggleHands(caps, st)))
	reg.Register(command.NewDefinition("clickobject (serial)", waitDefault, command.GroupNone,
		cmdClickObject(caps, st)))
	reg.Register(command.NewDefinition("bandageself", waitDClick, command.GroupDClick,
		cmdBandageSelf(caps)))
	reg.Register(command.NewDefinition("usetype (graphic) [color] [source] [range]", waitDClick, command.GroupDClick,
		cmdUseType(caps, st)))
	reg.Register(command.NewDefinition("useobject (serial)", waitDClick, command.GroupDClick,
		cmdUseObject(caps, st)))
	reg.Register(command.NewDefinition("useonce (graphic) [color]", waitDClick, command.GroupDClick,
		cmdUseOnce(caps, st)))
	reg.Register(command.NewDefinition("moveitem (serial) (destination) [x] [y] [z] [amount]", waitPickUp, command.GroupPickUp,
		cmdMoveItem(caps, st)))
	reg.Register(command.NewDefinition("moveitemoffset (serial) (destination) (x) (y) (z) [amount]", waitPickUp, command.GroupPickUp,
		cmdMoveItemOffset(caps, st)))
	reg.Register(command.NewDefinition("movetype (graphic) (destination) [color] [x] [y] [z] [amount] [range]", waitPickUp, command.GroupPickUp,
		cmdMoveType(caps, st)))
	reg.Register(command.NewDefinition("movetypeoffset (graphic) (destination) (x) (y) (z) [color] [amount] [range]", waitPickUp, command.GroupPickUp,
		cmdMoveTypeOffset(caps, st)))
	reg.Register(command.NewDefinition("walk (direction)", waitDefault, command.GroupNone,
		cmdMove(caps, "walk", false)))
	reg.Register(command.NewDefinition("turn (direction)", waitDefault, command.GroupNone,
		cmdMove(caps, "turn", false)))
	reg.Register(command.NewDefinition("run (direction)", waitDefault, command.GroupNone,
		cmdMove(caps, "run", true)))
	reg.Register(command.NewDefinition("useskill (skill)", waitDefault, command.GroupNone,
		cmdUseSkill(caps)))
	reg.Register(command.NewDefinition("feed (serial) (graphic) [color] [amount]", waitPickUp, command.GroupPickUp,
		cmdFeed(caps, st)))
	reg.Register(command.NewDefinition("rename (serial) (name)", waitDefault, command.GroupNone,
		cmdRename(caps)))
	reg.Register(command.NewDefinition("shownames (type)", waitDefault, command.GroupNone,
		cmdShowNames(st)))
	reg.Register(command.NewDefinition("equipitem (serial) (layer) [source]", waitPickUp, command.GroupPickUp,
		cmdEquipItem(caps, st)))
	reg.Register(command.NewDefinition("findobject (serial) [color] [source] [amount] [range]", waitDefault, command.GroupNone,
		cmdFindObject(caps, st)))
	reg.Register(command.NewDefinition("findtype (graphic) [color] [source] [amount] [range]", waitDefault, command.GroupNone,
		cmdFindType(caps, st)))
	reg.Register(command.NewDefinition("msg (text) [hue]", waitDefault, command.GroupNone,
		cmdMsg(caps)))
	reg.Register(command.NewDefinition("setalias (name) (serial)", 0, command.GroupNone,
		cmdSetAlias()))
	reg.Register(command.NewDefinition("unsetalias (name)", 0, command.GroupNone,
		cmdUnsetAlias()))
	reg.Register(command.NewDefinition("promptalias (name)", 0, command.GroupNone,
		cmdPromptAlias(caps, st)))
	reg.Register(command.NewDefinition("pause (ms)", 0, command.GroupNone,
		cmdPause()))
}

func cmdSetAbility(caps host.Capabilities) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		ability, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		caps.Actions.Ability(ability.(values.Str).Val)
		return nil
	}
}

func cmdAttack(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		serial, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		s := serial.(values.Serial)
		caps.Actions.Attack(s)
		st.Enemy = s
		return nil
	}
}

func clearHand(caps host.Capabilities, rt *runtime.Runtime, hand string) {
	serial, ok := caps.Player.FindItemByHand(hand)
	if !ok {
		return
	}
	if backpack, ok := rt.Aliases.Resolve(values.KindSerial, "backpack"); ok {
		caps.Actions.Drop(serial, 0, 0, 0, backpack.(values.Serial))
	}
}

func cmdClearHands(caps host.Capabilities) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		hand, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		switch hand.(values.Str).Val {
		case "both":
			clearHand(caps, rt, "left")
			clearHand(caps, rt, "right")
		default:
			clearHand(caps, rt, hand.(values.Str).Val)
		}
		return nil
	}
}

func cmdToggleHands(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		hand, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		h := hand.(values.Str).Val
		if serial, ok := caps.Player.FindItemByHand(h); ok {
			if backpack, ok := rt.Aliases.Resolve(values.KindSerial, "backpack"); ok {
				caps.Actions.Drop(serial, 0, 0, 0, backpack.(values.Serial))
				st.RememberToggledHand(h, serial)
			}
			return nil
		}
		if serial, ok := st.ToggledHand(h); ok {
			layer := "RightHand"
			if h == "left" {
				layer = "LeftHand"
			}
			caps.Actions.Equip(serial, layer, values.Serial{})
		}
		return nil
	}
}

func cmdClickObject(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		serial, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		s := serial.(values.Serial)
		caps.Actions.SingleClick(s)
		st.Last = s
		return nil
	}
}

func cmdBandageSelf(caps host.Capabilities) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		backpack, ok := rt.Aliases.Resolve(values.KindSerial, "backpack")
		if !ok {
			return values.NewCommandError("bandageself", "no backpack")
		}
		item, ok := caps.World.FindItemByGraphic(bandageGraphic, 0xFFFF, backpack.(values.Serial), 1, 0)
		if !ok {
			return values.NewCommandError("bandageself", "no bandages")
		}
		caps.Actions.DoubleClick(item.Serial)
		caps.TargetPrompt.BeginPrompt("self")
		return nil
	}
}

// findByGraphicSource looks up an item by graphic/color either inside a
// container (source is a real serial or Any) or on the ground (source is
// the Ground sentinel), matching `source 0 ⇒ ANY`/`source MAX ⇒
// GROUND` default rewrites.
func findByGraphicSource(caps host.Capabilities, graphic, color int, source values.Serial, amount, rng int) (host.Item, bool) {
	if source.Val == values.Ground {
		return caps.World.FindItemOnGround(graphic, color, rng)
	}
	return caps.World.FindItemByGraphic(graphic, color, source, amount, rng)
}

func cmdUseType(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		graphic, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		color, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		source, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		rng, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		item, ok := findByGraphicSource(caps, int(graphic.(values.Int).Val), int(color.(values.Int).Val),
			source.(values.Serial), 1, int(rng.(values.Int).Val))
		if !ok {
			return values.NewCommandError("usetype", "item not found")
		}
		caps.Actions.DoubleClick(item.Serial)
		st.Last = item.Serial
		return nil
	}
}

func cmdUseObject(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		serial, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		s := serial.(values.Serial)
		caps.Actions.DoubleClick(s)
		st.Last = s
		return nil
	}
}

func cmdUseOnce(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		graphic, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		color, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		backpack, ok := rt.Aliases.Resolve(values.KindSerial, "backpack")
		if !ok {
			return values.NewCommandError("useonce", "no backpack")
		}
		g := int(graphic.(values.Int).Val)
		item, ok := caps.World.FindItemByGraphic(g, int(color.(values.Int).Val), backpack.(values.Serial), 1, 0)
		if !ok {
			return values.NewCommandError("useonce", "item not found")
		}
		caps.Actions.DoubleClick(item.Serial)
		st.RememberUsedOnce(g, item.Serial)
		st.Last = item.Serial
		return nil
	}
}

func cmdMoveItem(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		serial, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		dest, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		x, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		y, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		z, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		amount, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		return st.Move.Begin(rt, caps.Player, caps.Actions,
			serial.(values.Serial), dest.(values.Serial),
			int(x.(values.Int).Val), int(y.(values.Int).Val), int(z.(values.Int).Val),
			int(amount.(values.Int).Val))
	}
}

// cmdMoveItemOffset is moveitem with the offset positions mandatory rather
// than optional.
func cmdMoveItemOffset(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		serial, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		dest, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		x, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		y, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		z, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		amount, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		return st.Move.Begin(rt, caps.Player, caps.Actions,
			serial.(values.Serial), dest.(values.Serial),
			int(x.(values.Int).Val), int(y.(values.Int).Val), int(z.(values.Int).Val),
			int(amount.(values.Int).Val))
	}
}

func cmdMoveType(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		graphic, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		dest, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		color, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		x, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		y, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		z, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		amount, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		rng, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		backpack, ok := rt.Aliases.Resolve(values.KindSerial, "backpack")
		if !ok {
			return values.NewCommandError("movetype", "no backpack")
		}
		item, ok := caps.World.FindItemByGraphic(int(graphic.(values.Int).Val), int(color.(values.Int).Val),
			backpack.(values.Serial), int(amount.(values.Int).Val), int(rng.(values.Int).Val))
		if !ok {
			return values.NewCommandError("movetype", "item not found")
		}
		return st.Move.Begin(rt, caps.Player, caps.Actions, item.Serial, dest.(values.Serial),
			int(x.(values.Int).Val), int(y.(values.Int).Val), int(z.(values.Int).Val), int(amount.(values.Int).Val))
	}
}

func cmdMoveTypeOffset(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		graphic, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		dest, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		x, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		y, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		z, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		color, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		amount, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		rng, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		backpack, ok := rt.Aliases.Resolve(values.KindSerial, "backpack")
		if !ok {
			return values.NewCommandError("movetypeoffset", "no backpack")
		}
		item, ok := caps.World.FindItemByGraphic(int(graphic.(values.Int).Val), int(color.(values.Int).Val),
			backpack.(values.Serial), int(amount.(values.Int).Val), int(rng.(values.Int).Val))
		if !ok {
			return values.NewCommandError("movetypeoffset", "item not found")
		}
		return st.Move.Begin(rt, caps.Player, caps.Actions, item.Serial, dest.(values.Serial),
			int(x.(values.Int).Val), int(y.(values.Int).Val), int(z.(values.Int).Val), int(amount.(values.Int).Val))
	}
}

// cmdMove implements walk/turn/run: the first direction in the
// comma-separated list is issued immediately; any remaining directions are
// re-enqueued as individual single-direction statements under the same
// keyword that invoked them, so a `turn` list keeps turning and a `walk`
// list keeps walking.
func cmdMove(caps host.Capabilities, keyword string, running bool) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		directions, err := args.NextAsArray(values.KindString)
		if err != nil {
			return err
		}
		if len(directions) == 0 {
			return values.NewSyntaxError("walk/turn/run (directions)")
		}
		caps.Actions.Move(directions[0].(values.Str).Val, running)
		if len(directions) > 1 {
			rest := make([]string, 0, len(directions)-1)
			for _, d := range directions[1:] {
				rest = append(rest, d.(values.Str).Val)
			}
			args.Spawn(keyword, rest)
		}
		return nil
	}
}

func cmdUseSkill(caps host.Capabilities) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		name, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		idx, ok := ResolveSkill(name.(values.Str).Val)
		if !ok {
			return values.NewCommandError("useskill", "unknown skill \""+name.(values.Str).Val+"\"")
		}
		caps.Actions.UseSkill(idx)
		return nil
	}
}

// cmdFeed implements `feed`: dragging a food item onto a mobile is the
// same pick-up+drop interaction `moveitem` drives, just with the
// destination resolved from a mobile serial rather than a container serial
//.
func cmdFeed(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		target, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		graphic, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		color, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		amount, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		backpack, ok := rt.Aliases.Resolve(values.KindSerial, "backpack")
		if !ok {
			return values.NewCommandError("feed", "no backpack")
		}
		item, ok := caps.World.FindItemByGraphic(int(graphic.(values.Int).Val), int(color.(values.Int).Val),
			backpack.(values.Serial), int(amount.(values.Int).Val), 0)
		if !ok {
			return values.NewCommandError("feed", "no matching food")
		}
		return st.Move.Begin(rt, caps.Player, caps.Actions, item.Serial, target.(values.Serial), 0, 0, 0, int(amount.(values.Int).Val))
	}
}

func cmdRename(caps host.Capabilities) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		serial, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		name, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		caps.Actions.Rename(serial.(values.Serial), name.(values.Str).Val)
		return nil
	}
}

// cmdShowNames implements `shownames`: purely a client-rendering toggle,
// there is no host verb to call through.
func cmdShowNames(st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		kind, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		switch kind.(values.Str).Val {
		case "corpses":
			st.ShowNamesCorpses = true
		case "mobiles":
			st.ShowNamesMobiles = true
		default:
			st.ShowNamesMobiles = true
			st.ShowNamesCorpses = true
		}
		return nil
	}
}

func cmdEquipItem(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		serial, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		layer, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		source, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}

		s := serial.(values.Serial)
		if item, found := caps.World.GetItem(s); found {
			if ext, ok := caps.ItemExt[item.Graphic]; ok && ext.RequiresBothHands() {
				clearHand(caps, rt, "left")
				clearHand(caps, rt, "right")
			}
		}

		return st.Equip.Begin(rt, caps.Actions, s, layer.(values.Str).Val, source.(values.Serial))
	}
}

func cmdFindObject(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		serial, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		color, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		source, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		if _, err := args.NextAs(values.KindInt); err != nil { // amount, unused for an exact-serial lookup
			return err
		}
		if _, err := args.NextAs(values.KindInt); err != nil { // range, unused for an exact-serial lookup
			return err
		}

		s := serial.(values.Serial)
		item, found := caps.World.GetItem(s)
		if found && color.(values.Int).Val != 0xFFFF && int64(item.Color) != color.(values.Int).Val {
			found = false
		}
		if found && source.(values.Serial).Val != values.Any && item.Container.Val != source.(values.Serial).Val {
			found = false
		}
		rt.Aliases.Set(values.KindBool, "found", values.NewBool(found))
		if found {
			st.LastObject = s
		}
		return nil
	}
}

func cmdFindType(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		graphic, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		color, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		source, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		amount, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		rng, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}

		item, found := findByGraphicSource(caps, int(graphic.(values.Int).Val), int(color.(values.Int).Val),
			source.(values.Serial), int(amount.(values.Int).Val), int(rng.(values.Int).Val))
		rt.Aliases.Set(values.KindBool, "found", values.NewBool(found))
		if found {
			st.LastObject = item.Serial
		}
		return nil
	}
}

func cmdMsg(caps host.Capabilities) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		text, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		hue, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		caps.Actions.Say(text.(values.Str).Val, int(hue.(values.Int).Val))
		return nil
	}
}

// cmdSetAlias implements `setalias` (, ): the first
// operand names the slot being written, the second is resolved as a serial
// and bound as a static alias under that name.
func cmdSetAlias() command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		name, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		value, err := args.NextAs(values.KindSerial)
		if err != nil {
			return err
		}
		rt.Aliases.Set(values.KindSerial, name.(values.Str).Val, value)
		return nil
	}
}

// cmdUnsetAlias implements `unsetalias`, clearing a name from every kind
// the alias store tracks.
func cmdUnsetAlias() command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		name, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		n := name.(values.Str).Val
		for _, k := range []values.Kind{values.KindInt, values.KindSerial, values.KindString, values.KindBool, values.KindDouble} {
			rt.Aliases.Unset(k, n)
		}
		return nil
	}
}

func cmdPromptAlias(caps host.Capabilities, st *State) command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		name, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		promise := caps.TargetPrompt.BeginPrompt("alias")
		if serial, ok := promise.Poll(); ok {
			rt.Aliases.Set(values.KindSerial, name.(values.Str).Val, serial)
			return nil
		}
		st.BeginPrompt(name.(values.Str).Val, promise)
		return nil
	}
}

func cmdPause() command.Handler {
	return func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		ms, err := args.NextAs(values.KindInt)
		if err != nil {
			return err
		}
		rt.Pause(uint64(ms.(values.Int).Val))
		return nil
	}
}

