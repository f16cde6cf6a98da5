package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uosteam/argument"
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

type fakeSink struct {
	printed []string
}

func (f *fakeSink) Print(text string, kind host.Kind) {
	f.printed = append(f.printed, text)
}

func newTestCtx(rt *runtime.Runtime) *argument.Context {
	return &argument.Context{Aliases: rt.Aliases, LocalValue: rt.LocalValue}
}

func TestDispatchUnknownCommandIsRunTime(t *testing.T) {
	var now uint64
	rt := runtime.New(runtime.FuncClock(func() uint64 { return now }))
	reg := NewRegistry()
	sink := &fakeSink{}

	result := Dispatch(reg, rt, sink, "bogus", Flags{}, nil, newTestCtx(rt))
	require.True(t, result.Consumed)
	require.NotNil(t, result.Err)
	require.Equal(t, values.RunTime, result.Err.Kind)
}

func TestDispatchUnknownCommandQuietSwallows(t *testing.T) {
	var now uint64
	rt := runtime.New(runtime.FuncClock(func() uint64 { return now }))
	reg := NewRegistry()
	sink := &fakeSink{}

	result := Dispatch(reg, rt, sink, "bogus", Flags{Quiet: true}, nil, newTestCtx(rt))
	require.True(t, result.Consumed)
	require.Nil(t, result.Err)
}

func TestDispatchMissingMandatoryArgPrintsUsage(t *testing.T) {
	var now uint64
	rt := runtime.New(runtime.FuncClock(func() uint64 { return now }))
	reg := NewRegistry()
	reg.Register(NewDefinition("say (text)", 0, GroupNone, func(rt *runtime.Runtime, args *argument.List, f Flags) *values.ScriptError {
		return nil
	}))
	sink := &fakeSink{}

	result := Dispatch(reg, rt, sink, "say", Flags{}, nil, newTestCtx(rt))
	require.True(t, result.Consumed)
	require.Nil(t, result.Err)
	require.Equal(t, []string{"say (text)"}, sink.printed)
}

func TestDispatchCooldownBlocksUntilElapsed(t *testing.T) {
	var now uint64
	rt := runtime.New(runtime.FuncClock(func() uint64 { return now }))
	reg := NewRegistry()
	calls := 0
	reg.Register(NewDefinition("ping", 100, GroupNone, func(rt *runtime.Runtime, args *argument.List, f Flags) *values.ScriptError {
		calls++
		return nil
	}))
	sink := &fakeSink{}
	args := []*argument.Argument{}

	first := Dispatch(reg, rt, sink, "ping", Flags{}, args, newTestCtx(rt))
	require.True(t, first.Consumed)
	require.Equal(t, 1, calls)

	now = 50
	second := Dispatch(reg, rt, sink, "ping", Flags{}, args, newTestCtx(rt))
	require.False(t, second.Consumed)
	require.Equal(t, 1, calls, "handler must not run again before cooldown elapses")

	now = 101
	third := Dispatch(reg, rt, sink, "ping", Flags{}, args, newTestCtx(rt))
	require.True(t, third.Consumed)
	require.Equal(t, 2, calls)
}

func TestDispatchGroupCooldownSharedAcrossCommands(t *testing.T) {
	var now uint64
	rt := runtime.New(runtime.FuncClock(func() uint64 { return now }))
	reg := NewRegistry()
	reg.Register(NewDefinition("pickup1", 100, GroupPickUp, func(rt *runtime.Runtime, args *argument.List, f Flags) *values.ScriptError {
		return nil
	}))
	reg.Register(NewDefinition("pickup2", 100, GroupPickUp, func(rt *runtime.Runtime, args *argument.List, f Flags) *values.ScriptError {
		return nil
	}))
	sink := &fakeSink{}

	first := Dispatch(reg, rt, sink, "pickup1", Flags{}, nil, newTestCtx(rt))
	require.True(t, first.Consumed)

	second := Dispatch(reg, rt, sink, "pickup2", Flags{}, nil, newTestCtx(rt))
	require.False(t, second.Consumed, "sibling group member must respect the shared cooldown")

	now = 101
	third := Dispatch(reg, rt, sink, "pickup2", Flags{}, nil, newTestCtx(rt))
	require.True(t, third.Consumed)
}

func TestDispatchCommandErrorPrintsKeywordMessage(t *testing.T) {
	var now uint64
	rt := runtime.New(runtime.FuncClock(func() uint64 { return now }))
	reg := NewRegistry()
	reg.Register(NewDefinition("clickobject (serial)", 0, GroupNone, func(rt *runtime.Runtime, args *argument.List, f Flags) *values.ScriptError {
		return values.NewCommandError("clickobject", "item not found")
	}))
	sink := &fakeSink{}
	args := []*argument.Argument{argument.Virtual("0x1")}

	result := Dispatch(reg, rt, sink, "clickobject", Flags{}, args, newTestCtx(rt))
	require.True(t, result.Consumed)
	require.Nil(t, result.Err)
	require.Equal(t, []string{"clickobject: item not found"}, sink.printed)
}

func TestStripModifiers(t *testing.T) {
	kw, f := StripModifiers("@!msg")
	require.Equal(t, "msg", kw)
	require.True(t, f.Quiet)
	require.True(t, f.Force)
}
