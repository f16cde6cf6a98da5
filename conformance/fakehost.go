package conformance

import (
	"strconv"

	"uosteam/host"
	"uosteam/values"
)

// fakeClock is a manually-advanced Clock, the same shape as
// runtime.FuncClock but owning its own counter so a case can advance it
// between Step calls to simulate cooldowns elapsing.
type fakeClock struct {
	now uint64
}

func (c *fakeClock) NowTicks() uint64 { return c.now }
func (c *fakeClock) Advance(ms uint64) { c.now += ms }

// recordingSink captures every Print call in order, the trace each case's
// expected sink lines diff against.
type recordingSink struct {
	printed []string
}

func (s *recordingSink) Print(text string, kind host.Kind) {
	s.printed = append(s.printed, text)
}

// fakePlayer is a configurable in-memory Player; its fields are seeded
// directly from a case's PlayerSpec rather than through a builder, since a
// conformance case needs only a handful of fields set per run.
type fakePlayer struct {
	stats   host.PlayerStats
	flags   host.PlayerFlags
	serial  values.Serial
	layers  map[string]values.Serial
	hands   map[string]values.Serial
	holding *values.Serial
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{
		serial: values.NewSerial(0x1),
		layers: make(map[string]values.Serial),
		hands:  make(map[string]values.Serial),
	}
}

func (p *fakePlayer) Stats() host.PlayerStats { return p.stats }
func (p *fakePlayer) Flags() host.PlayerFlags { return p.flags }
func (p *fakePlayer) Serial() values.Serial   { return p.serial }

func (p *fakePlayer) FindItemByLayer(layer string) (values.Serial, bool) {
	s, ok := p.layers[layer]
	return s, ok
}

func (p *fakePlayer) FindItemByHand(hand string) (values.Serial, bool) {
	s, ok := p.hands[hand]
	return s, ok
}

func (p *fakePlayer) HoldingItem() (values.Serial, bool) {
	if p.holding == nil {
		return values.Serial{}, false
	}
	return *p.holding, true
}

// fakeWorld is a tiny in-memory item/mobile table. Run starts every case
// with it empty; the fixture schema has no field for seeding items or
// mobiles.
type fakeWorld struct {
	items   map[uint32]host.Item
	mobiles map[uint32]host.Mobile
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{items: make(map[uint32]host.Item), mobiles: make(map[uint32]host.Mobile)}
}

func (w *fakeWorld) GetMobile(serial values.Serial) (host.Mobile, bool) {
	m, ok := w.mobiles[serial.Val]
	return m, ok
}

func (w *fakeWorld) GetItem(serial values.Serial) (host.Item, bool) {
	i, ok := w.items[serial.Val]
	return i, ok
}

func (w *fakeWorld) FindItemByGraphic(graphic, color int, container values.Serial, amount, rng int) (host.Item, bool) {
	for _, it := range w.items {
		if it.Graphic == graphic && it.Container.Val == container.Val {
			return it, true
		}
	}
	return host.Item{}, false
}

func (w *fakeWorld) FindItemOnGround(graphic, color int, rng int) (host.Item, bool) {
	for _, it := range w.items {
		if it.Graphic == graphic {
			return it, true
		}
	}
	return host.Item{}, false
}

// actionCall records one Actions verb invocation for scenario assertions
// (e.g. 's three ordered Move calls).
type actionCall struct {
	Verb string
	Args []string
}

// recordingActions logs every verb call instead of touching a real game
// connection; conformance cases assert against the recorded verb sequence.
type recordingActions struct {
	calls []actionCall
}

func (a *recordingActions) record(verb string, args ...string) {
	a.calls = append(a.calls, actionCall{Verb: verb, Args: args})
}

func (a *recordingActions) PickUp(serial values.Serial, amount int) {
	a.record("pickup", serial.String(), strconv.Itoa(amount))
}
func (a *recordingActions) Drop(serial values.Serial, x, y, z int, container values.Serial) {
	a.record("drop", serial.String(), container.String())
}
func (a *recordingActions) Equip(serial values.Serial, layer string, container values.Serial) {
	a.record("equip", serial.String(), layer)
}
func (a *recordingActions) DoubleClick(serial values.Serial) { a.record("doubleclick", serial.String()) }
func (a *recordingActions) SingleClick(serial values.Serial) { a.record("singleclick", serial.String()) }
func (a *recordingActions) Attack(serial values.Serial)      { a.record("attack", serial.String()) }
func (a *recordingActions) Rename(serial values.Serial, name string) {
	a.record("rename", serial.String(), name)
}
func (a *recordingActions) Say(text string, hue int) { a.record("say", text, strconv.Itoa(hue)) }
func (a *recordingActions) UseSkill(index int)       { a.record("useskill", strconv.Itoa(index)) }
func (a *recordingActions) Ability(kind string)      { a.record("ability", kind) }
func (a *recordingActions) Move(direction string, running bool) {
	a.record("move", direction, strconv.FormatBool(running))
}

// fakePromise never resolves; no conformance scenario drives a
// `promptalias` to completion, so there is nothing to simulate yet.
type fakePromise struct{}

func (fakePromise) Poll() (values.Serial, bool) { return values.Serial{}, false }

type fakeTargetPrompt struct{}

func (fakeTargetPrompt) BeginPrompt(kind string) host.TargetPromise { return fakePromise{} }
