package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

type fakePlayer struct {
	holding   values.Serial
	isHolding bool
	layers    map[string]values.Serial
}

func (p *fakePlayer) Stats() host.PlayerStats { return host.PlayerStats{} }
func (p *fakePlayer) Flags() host.PlayerFlags { return host.PlayerFlags{} }
func (p *fakePlayer) Serial() values.Serial   { return values.Serial{} }
func (p *fakePlayer) HoldingItem() (values.Serial, bool) { return p.holding, p.isHolding }
func (p *fakePlayer) FindItemByLayer(layer string) (values.Serial, bool) {
	s, ok := p.layers[layer]
	return s, ok
}
func (p *fakePlayer) FindItemByHand(hand string) (values.Serial, bool) { return values.Serial{}, false }

type fakeActions struct {
	pickedUp []values.Serial
	dropped  []values.Serial
	equipped []values.Serial
}

func (a *fakeActions) PickUp(serial values.Serial, amount int) { a.pickedUp = append(a.pickedUp, serial) }
func (a *fakeActions) Drop(serial values.Serial, x, y, z int, container values.Serial) {
	a.dropped = append(a.dropped, serial)
}
func (a *fakeActions) Equip(serial values.Serial, layer string, container values.Serial) {
	a.equipped = append(a.equipped, serial)
}
func (a *fakeActions) DoubleClick(serial values.Serial)      {}
func (a *fakeActions) SingleClick(serial values.Serial)      {}
func (a *fakeActions) Attack(serial values.Serial)           {}
func (a *fakeActions) Rename(serial values.Serial, name string) {}
func (a *fakeActions) Say(text string, hue int)              {}
func (a *fakeActions) UseSkill(index int)                    {}
func (a *fakeActions) Ability(kind string)                   {}
func (a *fakeActions) Move(direction string, running bool)   {}

func TestMoveItemBeginIssuesPickupAndDrop(t *testing.T) {
	clock := runtime.FuncClock(func() uint64 { return 0 })
	rt := runtime.New(clock)
	player := &fakePlayer{}
	actions := &fakeActions{}
	m := NewMoveItem()

	dest := values.NewSerial(0x40000002)
	serial := values.NewSerial(0x40000001)

	err := m.Begin(rt, player, actions, serial, dest, 0, 0, 0, 1)
	require.Nil(t, err)
	require.Equal(t, []values.Serial{serial}, actions.pickedUp)
	require.Equal(t, []values.Serial{serial}, actions.dropped)
	require.Equal(t, MoveIdle, m.State())
}

func TestMoveItemAlreadyHoldingDropsBackAndErrors(t *testing.T) {
	clock := runtime.FuncClock(func() uint64 { return 0 })
	rt := runtime.New(clock)
	held := values.NewSerial(0x1)
	player := &fakePlayer{holding: held, isHolding: true}
	actions := &fakeActions{}
	m := NewMoveItem()

	err := m.Begin(rt, player, actions, values.NewSerial(0x2), values.NewSerial(0x3), 0, 0, 0, 1)
	require.NotNil(t, err)
	require.Equal(t, values.CommandError, err.Kind)
	require.Contains(t, err.Message, "already holding")
	require.Equal(t, []values.Serial{held}, actions.dropped)
}
