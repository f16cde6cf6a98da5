package conformance

import (
	"fmt"

	"uosteam/alias"
	"uosteam/builtins"
	"uosteam/command"
	"uosteam/eval"
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

// Outcome is what a Case run produced, checked field-by-field against its
// Expectation.
type Outcome struct {
	Sink        []string
	Terminated  bool
	ScopeDepth  int
	ActionVerbs []string
	Err         *values.ScriptError

	aliases *alias.Store
	lists   *runtime.ListStore
}

// Run drives one Case to completion: it builds a fresh interpreter wired to
// an in-memory host, steps it Ticks times (polling the prompt and equip
// state machines each tick, the way a real driver would), and returns what
// happened.
func Run(c Case) Outcome {
	clock := &fakeClock{}
	sink := &recordingSink{}
	player := newFakePlayer()
	player.stats = host.PlayerStats{Hits: c.Player.Hits, MaxHits: c.Player.MaxHits}
	player.flags = host.PlayerFlags{IsDead: c.Player.Dead}
	if c.Player.Holding {
		held := values.NewSerial(0xDEAD)
		player.holding = &held
	}
	world := newFakeWorld()
	actions := &recordingActions{}

	caps := host.Capabilities{
		Clock:        clock,
		Sink:         sink,
		Player:       player,
		World:        world,
		Actions:      actions,
		TargetPrompt: fakeTargetPrompt{},
		ItemExt:      map[int]host.ItemExtEntry{},
	}

	rt := runtime.New(clock)
	reg := command.NewRegistry()
	st := builtins.Setup(reg, rt, caps)

	root := buildAST(c.Script)
	it := eval.New(root, rt, reg, sink)

	out := Outcome{lists: rt.Lists, aliases: rt.Aliases}
	ticks := c.Ticks
	if ticks <= 0 {
		ticks = 1
	}
	tickMs := uint64(c.TickMs)
	if tickMs == 0 {
		tickMs = 260
	}
	for i := 0; i < ticks; i++ {
		clock.Advance(tickMs)
		terminated, err := it.Step()
		st.PollPrompts(rt.Aliases)
		st.Equip.Poll(rt, caps.Player)
		if err != nil {
			out.Err = err
		}
		if terminated {
			out.Terminated = true
			break
		}
	}

	out.Sink = sink.printed
	out.ScopeDepth = it.ScopeDepth()
	for _, call := range actions.calls {
		out.ActionVerbs = append(out.ActionVerbs, formatCall(call))
	}
	return out
}

func formatCall(c actionCall) string {
	s := c.Verb
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}

// Alias resolves name against the run's alias store, trying serial, string,
// and int kinds in turn since a fixture does not declare which kind a
// command bound (per-kind tables).
func (o Outcome) Alias(name string) (string, bool) {
	if v, ok := o.aliases.Resolve(values.KindSerial, name); ok {
		return v.(values.Serial).String(), true
	}
	if v, ok := o.aliases.Resolve(values.KindString, name); ok {
		return v.(values.Str).Val, true
	}
	if v, ok := o.aliases.Resolve(values.KindInt, name); ok {
		return fmt.Sprintf("%d", v.(values.Int).Val), true
	}
	return "", false
}

// ListLength returns the named list's length after the run.
func (o Outcome) ListLength(name string) int {
	return o.lists.Length(name)
}
