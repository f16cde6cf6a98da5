package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uosteam/runtime"
	"uosteam/values"
)

func TestEquipItemPollCompletesOnLayerMatch(t *testing.T) {
	clock := runtime.FuncClock(func() uint64 { return 0 })
	rt := runtime.New(clock)
	actions := &fakeActions{}
	player := &fakePlayer{layers: map[string]values.Serial{}}
	m := NewEquipItem()

	serial := values.NewSerial(0x40000001)
	err := m.Begin(rt, actions, serial, "OneHanded", values.NewSerial(0))
	require.Nil(t, err)
	require.Equal(t, EquipInteracting, m.State())
	require.False(t, m.Poll(rt, player), "should still be waiting before the layer updates")

	player.layers["OneHanded"] = serial
	require.True(t, m.Poll(rt, player))
	require.Equal(t, EquipIdle, m.State())
}

func TestEquipItemTimeoutResetsState(t *testing.T) {
	var now uint64
	clock := runtime.FuncClock(func() uint64 { return now })
	rt := runtime.New(clock)
	actions := &fakeActions{}
	m := NewEquipItem()

	err := m.Begin(rt, actions, values.NewSerial(0x1), "OneHanded", values.NewSerial(0))
	require.Nil(t, err)
	require.False(t, m.Poll(rt, &fakePlayer{layers: map[string]values.Serial{}}))

	now = equipTimeoutMs
	require.True(t, m.Poll(rt, &fakePlayer{layers: map[string]values.Serial{}}))
	require.Equal(t, EquipIdle, m.State())
}

func TestEquipItemDifferentSerialWhileInteractingErrors(t *testing.T) {
	clock := runtime.FuncClock(func() uint64 { return 0 })
	rt := runtime.New(clock)
	actions := &fakeActions{}
	m := NewEquipItem()

	require.Nil(t, m.Begin(rt, actions, values.NewSerial(0x1), "OneHanded", values.NewSerial(0)))
	err := m.Begin(rt, actions, values.NewSerial(0x2), "TwoHanded", values.NewSerial(0))
	require.NotNil(t, err)
	require.Equal(t, values.CommandError, err.Kind)
}
