// Command uosteam is a minimal host harness: it wires in-memory stand-ins
// for every host capability to a fresh interpreter and steps it to
// completion, printing whatever the stand-in sink/actions recorded. There
// is no lexer/parser in this module (out-of-scope boundary), so the
// script driven is one of a few built-in demos assembled directly with
// ast.Builder rather than read from a source file — this binary exists to
// smoke-test the core end to end, not to be a real game-client front end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"uosteam/ast"
	"uosteam/builtins"
	"uosteam/command"
	"uosteam/eval"
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

func main() {
	demo := flag.String("demo", "alias", "which built-in demo script to run: alias, loop, walk")
	maxTicks := flag.Int("max-ticks", 50, "maximum number of Step calls before giving up")
	itemExtPath := flag.String("itemext", "", "optional path to a graphic,paperdoll_appearance,required_hands CSV table")
	flag.Parse()

	root, ok := demoScripts[*demo]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown demo %q; choose one of: alias, loop, walk\n", *demo)
		os.Exit(2)
	}

	itemExt := map[int]host.ItemExtEntry{}
	if *itemExtPath != "" {
		f, err := os.Open(*itemExtPath)
		if err != nil {
			log.Fatalf("uosteam: opening -itemext: %s", err)
		}
		itemExt, err = host.LoadItemExt(f)
		f.Close()
		if err != nil {
			log.Fatalf("uosteam: loading -itemext: %s", err)
		}
	}

	clock := &tickingClock{}
	sink := &stdoutSink{}
	player := newMemPlayer()
	world := newMemWorld()
	actions := &loggingActions{sink: sink}

	caps := host.Capabilities{
		Clock:        clock,
		Sink:         sink,
		Player:       player,
		World:        world,
		Actions:      actions,
		TargetPrompt: noPrompt{},
		ItemExt:      itemExt,
	}

	rt := runtime.New(clock)
	reg := command.NewRegistry()
	st := builtins.Setup(reg, rt, caps)
	it := eval.New(root(), rt, reg, sink)

	for i := 0; i < *maxTicks; i++ {
		clock.advance(260)
		terminated, err := it.Step()
		st.PollPrompts(rt.Aliases)
		st.Equip.Poll(rt, caps.Player)
		if err != nil {
			log.Fatalf("uosteam: unrecovered error: %s", err.Error())
		}
		if terminated {
			log.Printf("uosteam: script terminated after %d ticks", i+1)
			return
		}
	}
	log.Printf("uosteam: gave up after %d ticks without terminating", *maxTicks)
}

// demoScripts builds each demo's AST fresh per call since Step mutates
// scope/cursor state in place.
var demoScripts = map[string]func() *ast.Node{
	"alias": func() *ast.Node {
		b := ast.NewBuilder()
		b.Command("setalias", false, false, "foo", "0x40000001")
		b.Command("msg", false, false, "hi")
		b.Stmt(ast.New(ast.STOP, ""))
		return b.Root()
	},
	"loop": func() *ast.Node {
		b := ast.NewBuilder()
		forNode := ast.New(ast.FOR, "")
		forNode.AppendChild(ast.New(ast.INTEGER, "3"))
		b.Stmt(forNode)
		body := ast.Block(b.Root())
		cmd := ast.New(ast.COMMAND, "msg")
		cmd.AppendChild(ast.New(ast.OPERAND, "x"))
		body.Append(cmd)
		b.Stmt(ast.New(ast.ENDFOR, ""))
		return b.Root()
	},
	"walk": func() *ast.Node {
		b := ast.NewBuilder()
		b.Command("walk", false, false, "North,East,East")
		return b.Root()
	},
}

// tickingClock is a manually-advanced Clock; advance is called once per
// loop iteration in main to simulate the host's per-frame elapsed time.
type tickingClock struct{ now uint64 }

func (c *tickingClock) NowTicks() uint64 { return c.now }
func (c *tickingClock) advance(ms uint64) { c.now += ms }

// stdoutSink prints every Print call to stdout, prefixed by kind.
type stdoutSink struct{}

func (stdoutSink) Print(text string, kind host.Kind) {
	prefix := "regular"
	if kind == host.System {
		prefix = "system"
	}
	fmt.Printf("[%s] %s\n", prefix, text)
}

// memPlayer is a fixed, unremarkable player: alive, unmounted, holding
// nothing, with no items on any layer (so no backpack). Good enough to
// drive the demo scripts;
// a real host supplies its own live Player.
type memPlayer struct {
	serial values.Serial
}

func newMemPlayer() *memPlayer {
	return &memPlayer{serial: values.NewSerial(0x1)}
}

func (p *memPlayer) Stats() host.PlayerStats           { return host.PlayerStats{Hits: 100, MaxHits: 100} }
func (p *memPlayer) Flags() host.PlayerFlags           { return host.PlayerFlags{} }
func (p *memPlayer) Serial() values.Serial             { return p.serial }
func (p *memPlayer) FindItemByLayer(string) (values.Serial, bool) { return values.Serial{}, false }
func (p *memPlayer) FindItemByHand(string) (values.Serial, bool)  { return values.Serial{}, false }
func (p *memPlayer) HoldingItem() (values.Serial, bool)           { return values.Serial{}, false }

// memWorld is an empty world model; none of the demo scripts query the
// world.
type memWorld struct{}

func newMemWorld() *memWorld { return &memWorld{} }

func (memWorld) GetMobile(values.Serial) (host.Mobile, bool) { return host.Mobile{}, false }
func (memWorld) GetItem(values.Serial) (host.Item, bool)     { return host.Item{}, false }
func (memWorld) FindItemByGraphic(int, int, values.Serial, int, int) (host.Item, bool) {
	return host.Item{}, false
}
func (memWorld) FindItemOnGround(int, int, int) (host.Item, bool) { return host.Item{}, false }

// loggingActions prints every verb call through sink instead of sending
// real network packets ("the network send path" is out of scope).
type loggingActions struct{ sink host.Sink }

func (a *loggingActions) log(format string, args ...any) {
	a.sink.Print(fmt.Sprintf(format, args...), host.Regular)
}

func (a *loggingActions) PickUp(serial values.Serial, amount int) { a.log("pickup %s x%d", serial, amount) }
func (a *loggingActions) Drop(serial values.Serial, x, y, z int, container values.Serial) {
	a.log("drop %s at (%d,%d,%d) into %s", serial, x, y, z, container)
}
func (a *loggingActions) Equip(serial values.Serial, layer string, container values.Serial) {
	a.log("equip %s onto %s", serial, layer)
}
func (a *loggingActions) DoubleClick(serial values.Serial) { a.log("doubleclick %s", serial) }
func (a *loggingActions) SingleClick(serial values.Serial) { a.log("singleclick %s", serial) }
func (a *loggingActions) Attack(serial values.Serial)      { a.log("attack %s", serial) }
func (a *loggingActions) Rename(serial values.Serial, name string) {
	a.log("rename %s to %q", serial, name)
}
func (a *loggingActions) Say(text string, hue int) { a.log("say %q hue=%d", text, hue) }
func (a *loggingActions) UseSkill(index int)       { a.log("useskill %d", index) }
func (a *loggingActions) Ability(kind string)      { a.log("ability %s", kind) }
func (a *loggingActions) Move(direction string, running bool) {
	a.log("move %s running=%v", direction, running)
}

// noPrompt never resolves a targeting cursor; no demo drives promptalias.
type noPrompt struct{}

func (noPrompt) BeginPrompt(string) host.TargetPromise { return noPromise{} }

type noPromise struct{}

func (noPromise) Poll() (values.Serial, bool) { return values.Serial{}, false }
