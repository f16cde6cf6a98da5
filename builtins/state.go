// Package builtins implements the command handlers and expression handlers,
// each a thin adapter over the host capability surface. None of them touch
// the network, UI, or world model directly — they only call through
// host.Capabilities.
package builtins

import (
	"uosteam/alias"
	"uosteam/host"
	"uosteam/ops"
	"uosteam/values"
)

// State tracks the small amount of cross-statement bookkeeping the
// dynamic aliases need (`last`, `lasttarget`, `lastobject`, `enemy`,
// `friend`) and the mount-sticky fallback, plus the per-command bookkeeping
// the built-in handlers need (toggled hand items, "used once" graphics, pending
// `promptalias` prompts, the `shownames` display flag). It is owned by the
// host alongside the Runtime, not by the interpreter itself.
type State struct {
	Last       values.Serial
	LastTarget values.Serial
	LastObject values.Serial
	Enemy      values.Serial
	Friend     values.Serial

	lastMount    values.Serial
	haveLastMount bool

	// toggledHand remembers the item `togglehands` last unequipped from a
	// hand, so a second call can re-equip it.
	toggledHand map[string]values.Serial

	// usedOnce remembers, per graphic, the last serial `useonce` acted on.
	// cmdUseOnce records into it but does not consult it, so a repeated call
	// acts on whichever instance World.FindItemByGraphic returns, which may
	// be the same one again.
	usedOnce map[int]values.Serial

	// ShowNamesMobiles/ShowNamesCorpses mirror the `shownames` toggle; there
	// is no host action for this (it is purely client-side rendering), so
	// the command only flips local state.
	ShowNamesMobiles bool
	ShowNamesCorpses bool

	pendingPrompt *pendingPrompt

	// Move and Equip are the polled multi-step state machines the
	// moveitem/moveitemoffset/movetype/movetypeoffset and equipitem
	// commands drive. One of each per interpreter, matching "at most one
	// active script" — a second script would get its own State.
	Move  *ops.MoveItem
	Equip *ops.EquipItem
}

// pendingPrompt tracks a `promptalias` invocation that has not yet resolved
// (promptalias), polled once per tick by PollPrompts rather than
// blocking dispatch.
type pendingPrompt struct {
	name    string
	promise host.TargetPromise
}

// NewState creates empty bookkeeping state.
func NewState() *State {
	return &State{
		toggledHand: make(map[string]values.Serial),
		usedOnce:    make(map[int]values.Serial),
		Move:        ops.NewMoveItem(),
		Equip:       ops.NewEquipItem(),
	}
}

// RememberMount records serial as the last-known mount, used by the
// `mount` alias's sticky fallback when the player is currently unmounted.
func (s *State) RememberMount(serial values.Serial) {
	s.lastMount = serial
	s.haveLastMount = true
}

// LastMount returns the last-known mount, if any has been recorded.
func (s *State) LastMount() (values.Serial, bool) {
	return s.lastMount, s.haveLastMount
}

// RememberToggledHand records serial as the item `togglehands` pulled off
// hand, so the next toggle re-equips it.
func (s *State) RememberToggledHand(hand string, serial values.Serial) {
	s.toggledHand[hand] = serial
}

// ToggledHand returns the item last pulled off hand by `togglehands`, if
// any, clearing the record (a toggle consumes it).
func (s *State) ToggledHand(hand string) (values.Serial, bool) {
	serial, ok := s.toggledHand[hand]
	if ok {
		delete(s.toggledHand, hand)
	}
	return serial, ok
}

// LastUsedOnce returns the serial `useonce` most recently acted on for
// graphic, if any.
func (s *State) LastUsedOnce(graphic int) (values.Serial, bool) {
	serial, ok := s.usedOnce[graphic]
	return serial, ok
}

// RememberUsedOnce records serial as the instance of graphic `useonce` most
// recently acted on.
func (s *State) RememberUsedOnce(graphic int, serial values.Serial) {
	s.usedOnce[graphic] = serial
}

// BeginPrompt records an in-flight `promptalias` targeting request.
func (s *State) BeginPrompt(name string, promise host.TargetPromise) {
	s.pendingPrompt = &pendingPrompt{name: name, promise: promise}
}

// PollPrompts checks whether a pending `promptalias` request has resolved,
// and if so, binds the alias and clears the pending state. It is called
// once per tick by the host driver, independent of command dispatch,
// mirroring ops.EquipItem.Poll's "confirmation happens on a later tick"
// shape for a request the host capability contract can only answer
// asynchronously.
func (s *State) PollPrompts(store *alias.Store) {
	if s.pendingPrompt == nil {
		return
	}
	serial, ok := s.pendingPrompt.promise.Poll()
	if !ok {
		return
	}
	store.Set(values.KindSerial, s.pendingPrompt.name, serial)
	s.pendingPrompt = nil
}
