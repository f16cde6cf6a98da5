// Package ops implements the small polled finite state machines for
// multi-tick game interactions: MoveItem (pick-up + drop) and
// EquipItem (pick-up + equip). MoveItem is one-shot: its state returns to
// Idle immediately after issuing the drop rather than polling the world
// model for confirmation on a later tick. EquipItem does poll for
// confirmation; see its own doc comment.
package ops

import (
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

// MoveState is MoveItem's state.
type MoveState int

const (
	MoveIdle MoveState = iota
	MoveInteracting
)

// moveTimeoutMs bounds how long a move is allowed to stay marked
// Interacting; under the one-shot resolution this only matters if a future
// host extension makes Begin span ticks.
const moveTimeoutMs = 5000

// MoveItem is the pick-up+drop state machine. One instance belongs to one
// interpreter; it is not safe for concurrent use, matching the
// single-threaded-cooperative model.
type MoveItem struct {
	state  MoveState
	serial values.Serial
}

// NewMoveItem creates an idle MoveItem machine.
func NewMoveItem() *MoveItem {
	return &MoveItem{state: MoveIdle}
}

// Begin starts moving serial to destination with the given offset and
// amount. If the player is already holding any item, it is dropped
// (container 0, offset 0,0,0) and a CommandError is raised. If this machine is
// already interacting with a different serial, starting a new one raises a
// distinct CommandError.
func (m *MoveItem) Begin(rt *runtime.Runtime, player host.Player, actions host.Actions, serial, destination values.Serial, offsetX, offsetY, offsetZ, amount int) *values.ScriptError {
	if held, ok := player.HoldingItem(); ok {
		actions.Drop(held, 0, 0, 0, values.Serial{})
		return values.NewCommandError("moveitem", "You are already holding an item")
	}

	if m.state == MoveInteracting && m.serial.Val != serial.Val {
		return values.NewCommandError("moveitem", "already moving "+serial.String())
	}

	m.state = MoveInteracting
	m.serial = serial
	rt.Timeout(moveTimeoutMs, func() bool {
		m.state = MoveIdle
		return true
	})

	actions.PickUp(serial, amount)
	actions.Drop(serial, offsetX, offsetY, offsetZ, destination)
	m.state = MoveIdle
	return nil
}

// State reports the current state, mainly for tests.
func (m *MoveItem) State() MoveState { return m.state }
