package eval

import (
	"testing"

	"uosteam/argument"
	"uosteam/ast"
	"uosteam/command"
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/values"
)

type testSink struct {
	printed []string
}

func (s *testSink) Print(text string, kind host.Kind) {
	s.printed = append(s.printed, text)
}

func newTestInterpreter(root *ast.Node) (*Interpreter, *testSink, *command.Registry, *runtime.Runtime) {
	clock := runtime.FuncClock(func() uint64 { return 0 })
	rt := runtime.New(clock)
	cmds := command.NewRegistry()
	sink := &testSink{}
	return New(root, rt, cmds, sink), sink, cmds, rt
}

func runToCompletion(t *testing.T, it *Interpreter, maxSteps int) {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		terminated, err := it.Step()
		if err != nil {
			t.Fatalf("step %d returned error: %v", i, err)
		}
		if terminated {
			return
		}
	}
	t.Fatalf("script did not terminate within %d steps", maxSteps)
}

func TestForLoopMsgThreeTimes(t *testing.T) {
	b := ast.NewBuilder()
	forNode := ast.New(ast.FOR, "")
	forNode.AppendChild(ast.New(ast.INTEGER, "3"))
	b.Root().AppendChild(forNode)
	b.Command("msg", false, false, "x")
	b.Root().AppendChild(ast.New(ast.ENDFOR, ""))

	it, sink, cmds, _ := newTestInterpreter(b.Root())
	cmds.Register(command.NewDefinition("msg (text)", 0, command.GroupNone, func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		v, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		rt.Logger.Print(v.String())
		sink.Print(v.String(), host.Regular)
		return nil
	}))

	runToCompletion(t, it, 50)

	if len(sink.printed) != 3 {
		t.Fatalf("expected 3 prints, got %d: %v", len(sink.printed), sink.printed)
	}
	for _, p := range sink.printed {
		if p != "x" {
			t.Fatalf("expected all prints to be \"x\", got %q", p)
		}
	}
}

func TestIfBranchesOnCondition(t *testing.T) {
	runWithHits := func(hits int64) []string {
		b := ast.NewBuilder()
		ifNode := ast.New(ast.IF, "")
		bin := ast.New(ast.BINARY_EXPRESSION, "")
		bin.AppendChild(ast.New(ast.UNARY_EXPRESSION, "hits"))
		bin.AppendChild(ast.New(ast.LESS_THAN, ""))
		bin.AppendChild(ast.New(ast.INTEGER, "30"))
		ifNode.AppendChild(bin)
		b.Root().AppendChild(ifNode)
		b.Command("bandageself", false, false)
		b.Root().AppendChild(ast.New(ast.ENDIF, ""))

		it, sink, cmds, rt := newTestInterpreter(b.Root())
		rt.Expressions.Register("hits", func(args *argument.List, quiet bool) (values.Value, *values.ScriptError) {
			return values.NewInt(hits), nil
		})
		cmds.Register(command.NewDefinition("bandageself", 0, command.GroupNone, func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
			sink.Print("bandaged", host.Regular)
			return nil
		}))
		runToCompletion(t, it, 50)
		return sink.printed
	}

	if got := runWithHits(20); len(got) != 1 {
		t.Fatalf("expected bandageself to fire when hits < 30, got %v", got)
	}
	if got := runWithHits(100); len(got) != 0 {
		t.Fatalf("expected no bandageself when hits >= 30, got %v", got)
	}
}

func TestForeachOverList(t *testing.T) {
	b := ast.NewBuilder()
	feNode := ast.New(ast.FOREACH, "v")
	feNode.AppendChild(ast.New(ast.OPERAND, "l"))
	b.Root().AppendChild(feNode)
	b.Command("msg", false, false, "v")
	b.Root().AppendChild(ast.New(ast.ENDFOR, ""))

	it, sink, cmds, rt := newTestInterpreter(b.Root())
	rt.Lists.PushBack("l", argument.Virtual("1"), false)
	rt.Lists.PushBack("l", argument.Virtual("2"), false)
	cmds.Register(command.NewDefinition("msg (text)", 0, command.GroupNone, func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		v, err := args.NextAs(values.KindString)
		if err != nil {
			return err
		}
		sink.Print(v.String(), host.Regular)
		return nil
	}))

	runToCompletion(t, it, 50)

	if len(sink.printed) != 2 || sink.printed[0] != "1" || sink.printed[1] != "2" {
		t.Fatalf("expected [1 2], got %v", sink.printed)
	}
	if rt.Lists.Length("l") != 2 {
		t.Fatalf("expected list untouched by foreach, got length %d", rt.Lists.Length("l"))
	}
}

func TestStopTerminatesScript(t *testing.T) {
	b := ast.NewBuilder()
	b.Stmt(ast.New(ast.STOP, ""))
	b.Command("msg", false, false, "unreachable")

	it, sink, cmds, _ := newTestInterpreter(b.Root())
	cmds.Register(command.NewDefinition("msg (text)", 0, command.GroupNone, func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		sink.Print("ran", host.Regular)
		return nil
	}))

	terminated, err := it.Step()
	if !terminated || err != nil {
		t.Fatalf("expected immediate termination, got terminated=%v err=%v", terminated, err)
	}
	if len(sink.printed) != 0 {
		t.Fatal("expected statement after stop never to run")
	}
}

func TestUnknownCommandQuietDoesNotAbort(t *testing.T) {
	b := ast.NewBuilder()
	b.Command("bogus", true, false)
	b.Command("msg", false, false, "after")

	it, sink, cmds, _ := newTestInterpreter(b.Root())
	cmds.Register(command.NewDefinition("msg (text)", 0, command.GroupNone, func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		v, _ := args.NextAs(values.KindString)
		sink.Print(v.String(), host.Regular)
		return nil
	}))

	runToCompletion(t, it, 10)
	if len(sink.printed) != 1 || sink.printed[0] != "after" {
		t.Fatalf("expected quiet unknown command to be swallowed and execution to continue, got %v", sink.printed)
	}
}

func TestUnknownCommandBareAborts(t *testing.T) {
	b := ast.NewBuilder()
	b.Command("bogus", false, false)
	b.Command("msg", false, false, "after")

	it, sink, cmds, _ := newTestInterpreter(b.Root())
	cmds.Register(command.NewDefinition("msg (text)", 0, command.GroupNone, func(rt *runtime.Runtime, args *argument.List, f command.Flags) *values.ScriptError {
		sink.Print("after", host.Regular)
		return nil
	}))

	terminated, err := it.Step()
	if !terminated || err == nil {
		t.Fatalf("expected bare unknown command to terminate with error, got terminated=%v err=%v", terminated, err)
	}
	if len(sink.printed) != 0 {
		t.Fatal("expected second statement never to run after unquieted error")
	}
}
