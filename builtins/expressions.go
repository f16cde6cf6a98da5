package builtins

import (
	"uosteam/argument"
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

// RegisterExpressions wires the player-state predicates/readouts condition
// expressions evaluate against (e.g. `if hits < 30`, `if dead`), plus
// `listlength` and `timer`/`timerexists`, which read the list/timer stores
// directly.
func RegisterExpressions(exprs *runtime.ExprRegistry, caps host.Capabilities, lists *runtime.ListStore, timers *runtime.TimerStore) {
	stat := func(f func(host.PlayerStats) int) runtime.ExprHandler {
		return func(args *argument.List, quiet bool) (values.Value, *values.ScriptError) {
			return values.NewInt(int64(f(caps.Player.Stats()))), nil
		}
	}
	exprs.Register("hits", stat(func(s host.PlayerStats) int { return s.Hits }))
	exprs.Register("maxhits", stat(func(s host.PlayerStats) int { return s.MaxHits }))
	exprs.Register("stamina", stat(func(s host.PlayerStats) int { return s.Stamina }))
	exprs.Register("maxstamina", stat(func(s host.PlayerStats) int { return s.MaxStamina }))
	exprs.Register("mana", stat(func(s host.PlayerStats) int { return s.Mana }))
	exprs.Register("maxmana", stat(func(s host.PlayerStats) int { return s.MaxMana }))
	exprs.Register("gold", stat(func(s host.PlayerStats) int { return s.Gold }))
	exprs.Register("followers", stat(func(s host.PlayerStats) int { return s.Followers }))
	exprs.Register("physicalresist", stat(func(s host.PlayerStats) int { return s.PhysResist }))
	exprs.Register("fireresist", stat(func(s host.PlayerStats) int { return s.FireResist }))
	exprs.Register("coldresist", stat(func(s host.PlayerStats) int { return s.ColdResist }))
	exprs.Register("poisonresist", stat(func(s host.PlayerStats) int { return s.PoisonResist }))
	exprs.Register("energyresist", stat(func(s host.PlayerStats) int { return s.EnergyResist }))

	flag := func(f func(host.PlayerFlags) bool) runtime.ExprHandler {
		return func(args *argument.List, quiet bool) (values.Value, *values.ScriptError) {
			return values.NewBool(f(caps.Player.Flags())), nil
		}
	}
	exprs.Register("dead", flag(func(f host.PlayerFlags) bool { return f.IsDead }))
	exprs.Register("hidden", flag(func(f host.PlayerFlags) bool { return f.IsHidden }))
	exprs.Register("paralyzed", flag(func(f host.PlayerFlags) bool { return f.IsParalyzed }))
	exprs.Register("poisoned", flag(func(f host.PlayerFlags) bool { return f.IsPoisoned }))
	exprs.Register("warmode", flag(func(f host.PlayerFlags) bool { return f.InWarMode }))
	exprs.Register("mounted", flag(func(f host.PlayerFlags) bool { return f.IsMounted }))

	exprs.Register("findobject", func(args *argument.List, quiet bool) (values.Value, *values.ScriptError) {
		serial, err := args.NextAs(values.KindSerial)
		if err != nil {
			return nil, err
		}
		_, ok := caps.World.GetItem(serial.(values.Serial))
		if !ok {
			_, ok = caps.World.GetMobile(serial.(values.Serial))
		}
		return values.NewBool(ok), nil
	})

	exprs.Register("listlength", func(args *argument.List, quiet bool) (values.Value, *values.ScriptError) {
		name, err := args.NextAs(values.KindString)
		if err != nil {
			return nil, err
		}
		return values.NewInt(int64(lists.Length(name.(values.Str).Val))), nil
	})

	exprs.Register("timer", func(args *argument.List, quiet bool) (values.Value, *values.ScriptError) {
		name, err := args.NextAs(values.KindString)
		if err != nil {
			return nil, err
		}
		elapsed, _ := timers.Get(name.(values.Str).Val)
		return values.NewInt(int64(elapsed)), nil
	})

	exprs.Register("timerexists", func(args *argument.List, quiet bool) (values.Value, *values.ScriptError) {
		name, err := args.NextAs(values.KindString)
		if err != nil {
			return nil, err
		}
		return values.NewBool(timers.Exists(name.(values.Str).Val)), nil
	})
}
