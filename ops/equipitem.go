package ops

import (
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

// EquipState is EquipItem's state.
type EquipState int

const (
	EquipIdle EquipState = iota
	EquipInteracting
)

const equipTimeoutMs = 5000

// EquipItem is the pick-up+equip state machine. Unlike MoveItem, its
// completion genuinely depends on confirmation from the world model: Begin
// issues the equip request and notes a deadline, then Poll (called once per
// tick by the host driver, independent of command dispatch) checks whether
// the item has landed on the target paperdoll layer. Dispatch itself is
// still one-shot — `equipitem` always reports consumed on the tick it
// runs — so script forward progress never blocks on this confirmation.
//
// The deadline is tracked against rt.Clock directly rather than through
// rt.Timeout/rt.ClearTimeout: that interpreter-level timeout slot is always
// cleared on dispatch exit, which would disarm a timeout armed from
// inside Begin before Poll ever got a tick to observe it.
type EquipItem struct {
	state    EquipState
	serial   values.Serial
	layer    string
	deadline uint64
}

// NewEquipItem creates an idle EquipItem machine.
func NewEquipItem() *EquipItem {
	return &EquipItem{state: EquipIdle}
}

// Begin picks up serial and issues an equip of it onto layer from container.
func (m *EquipItem) Begin(rt *runtime.Runtime, actions host.Actions, serial values.Serial, layer string, container values.Serial) *values.ScriptError {
	if m.state == EquipInteracting && m.serial.Val != serial.Val {
		return values.NewCommandError("equipitem", "already equipping "+serial.String())
	}

	m.state = EquipInteracting
	m.serial = serial
	m.layer = layer
	m.deadline = rt.Clock.NowTicks() + equipTimeoutMs

	actions.PickUp(serial, 1)
	actions.Equip(serial, layer, container)
	return nil
}

// Poll checks whether the in-flight equip has landed on its target layer,
// or whether its confirmation window has expired, clearing the state
// either way. It is a no-op when the machine is Idle.
func (m *EquipItem) Poll(rt *runtime.Runtime, player host.Player) bool {
	if m.state != EquipInteracting {
		return true
	}
	if found, ok := player.FindItemByLayer(m.layer); ok && found.Val == m.serial.Val {
		m.state = EquipIdle
		return true
	}
	if rt.Clock.NowTicks() >= m.deadline {
		m.state = EquipIdle
		return true
	}
	return false
}

// State reports the current state, mainly for tests.
func (m *EquipItem) State() EquipState { return m.state }
