// Package host declares the capability surface the interpreter core
// consumes and nothing else: a monotonic clock, a print sink, player
// state, the world model, and the action/target-prompt verbs built-in
// commands issue. The host embedding this module supplies concrete
// implementations; builtins are written only against these interfaces.
package host

import "uosteam/values"

// Kind distinguishes system chat from regular script output.
type Kind int

const (
	System Kind = iota
	Regular
)

// Sink receives text the script prints, either via an explicit `msg`-style
// command or the dispatcher's usage/error output.
type Sink interface {
	Print(text string, kind Kind)
}

// Clock is the monotonic tick source driving cooldowns, pauses, and
// timeouts. Tick granularity is host-defined (milliseconds is typical).
type Clock interface {
	NowTicks() uint64
}

// PlayerFlags mirrors the boolean state expression handlers read.
type PlayerFlags struct {
	IsDead      bool
	IsHidden    bool
	IsParalyzed bool
	IsPoisoned  bool
	InWarMode   bool
	IsMounted   bool
}

// PlayerStats mirrors the numeric state expression handlers read.
type PlayerStats struct {
	Hits          int
	MaxHits       int
	Stamina       int
	MaxStamina    int
	Mana          int
	MaxMana       int
	PhysResist    int
	FireResist    int
	ColdResist    int
	PoisonResist  int
	EnergyResist  int
	Gold          int
	Followers     int
	X, Y, Z       int
}

// Player exposes the local player's observable state and identity.
type Player interface {
	Stats() PlayerStats
	Flags() PlayerFlags
	Serial() values.Serial
	FindItemByLayer(layer string) (values.Serial, bool)
	FindItemByHand(hand string) (values.Serial, bool)
	// HoldingItem reports the item currently held on the drag cursor, if
	// any — consulted by ops.MoveItem before starting a new pick-up.
	HoldingItem() (values.Serial, bool)
}

// Item is the subset of an item's fields built-in commands inspect.
type Item struct {
	Serial   values.Serial
	Graphic  int
	Color    int
	Amount   int
	Container values.Serial
	X, Y, Z  int
	Layer    string
}

// Mobile is the subset of a mobile's fields built-in commands inspect.
type Mobile struct {
	Serial values.Serial
	X, Y, Z int
	Name   string
}

// World is the game-world model the core queries but never mutates
// directly; mutation happens through Actions.
type World interface {
	GetMobile(serial values.Serial) (Mobile, bool)
	GetItem(serial values.Serial) (Item, bool)
	FindItemByGraphic(graphic, color int, container values.Serial, amount, rng int) (Item, bool)
	FindItemOnGround(graphic, color int, rng int) (Item, bool)
}

// TargetPromise resolves to the serial the player targeted, once available.
type TargetPromise interface {
	Poll() (values.Serial, bool)
}

// TargetPrompt issues a targeting cursor to the player.
type TargetPrompt interface {
	BeginPrompt(kind string) TargetPromise
}

// Actions is the set of verbs built-in commands issue against the game
// world. None of these block; the host is expected to queue/send them
// asynchronously and report results through World/Player on a later tick.
type Actions interface {
	PickUp(serial values.Serial, amount int)
	Drop(serial values.Serial, x, y, z int, container values.Serial)
	Equip(serial values.Serial, layer string, container values.Serial)
	DoubleClick(serial values.Serial)
	SingleClick(serial values.Serial)
	Attack(serial values.Serial)
	Rename(serial values.Serial, name string)
	Say(text string, hue int)
	UseSkill(index int)
	Ability(kind string)
	// Move issues a single step of movement in direction ("north", "east",
	// ...), used by walk/turn/run. run passes running=true; walk and turn
	// both pass running=false and so issue the same call.
	Move(direction string, running bool)
}

// ItemExtEntry is one row of the equip conflict-resolution table.
type ItemExtEntry struct {
	Graphic              int
	PaperdollAppearance string // "Invalid" | "Left" | "Right"
	RequiredHands        string // "Invalid" | "One" | "Two"
}

// RequiresBothHands reports whether equipping this item should force the
// off-hand clear, part of equipitem's conflict resolution.
func (e ItemExtEntry) RequiresBothHands() bool { return e.RequiredHands == "Two" }

// Capabilities bundles every host dependency builtins need. The host
// constructs one of these and wires it into the interpreter at startup.
type Capabilities struct {
	Clock        Clock
	Sink         Sink
	Player       Player
	World        World
	Actions      Actions
	TargetPrompt TargetPrompt
	ItemExt      map[int]ItemExtEntry
}
