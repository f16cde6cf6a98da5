// Package eval implements the resumable tree-walking evaluator: a
// single call to Step advances at most one statement of forward progress,
// so the host can drive a script forward one game tick at a time without
// ever blocking on it.
package eval

import (
	"strconv"

	"uosteam/argument"
	"uosteam/ast"
	"uosteam/command"
	"uosteam/host"
	"uosteam/runtime"
	"uosteam/scope"
	"uosteam/values"
)

// iterVar is the hidden scope binding name FOR uses to track its counter.
const iterVar = "$for_index"

// Interpreter drives one script's AST forward one statement per Step call.
type Interpreter struct {
	root    *ast.Node
	current *ast.Node
	scope   *scope.Stack
	rt      *runtime.Runtime
	cmds    *command.Registry
	sink    host.Sink
}

// New builds an Interpreter over root (the script's STATEMENT root node, per
// ast.Builder), wired to rt for cooldown/pause/timeout/list/timer/alias
// state, cmds for command lookup, and sink for usage/error/print output.
func New(root *ast.Node, rt *runtime.Runtime, cmds *command.Registry, sink host.Sink) *Interpreter {
	return &Interpreter{
		root:    root,
		current: root.FirstChild,
		scope:   scope.New(),
		rt:      rt,
		cmds:    cmds,
		sink:    sink,
	}
}

// Terminated reports whether the script has run to completion (via STOP,
// falling off the end, or a fatal timeout).
func (it *Interpreter) Terminated() bool {
	return it.current == nil
}

// ScopeDepth reports how many control-construct scopes are currently open,
// used by conformance checks asserting a balanced fragment returns the
// stack to 0.
func (it *Interpreter) ScopeDepth() int {
	return it.scope.Depth()
}

// Stop drops the active script immediately and clears any armed timeout
// (cancellation note).
func (it *Interpreter) Stop() {
	it.current = nil
	it.rt.ClearTimeout()
}

func (it *Interpreter) ctx() *argument.Context {
	return &argument.Context{
		Scope:      it.scope,
		Aliases:    it.rt.Aliases,
		LocalValue: it.rt.LocalValue,
	}
}

// Step advances the script by at most one statement. terminated reports
// whether the script has finished (successfully or via an unrecovered
// error); err is set if this step produced a propagating RunTime error.
func (it *Interpreter) Step() (terminated bool, err *values.ScriptError) {
	if it.current == nil {
		return true, nil
	}

	proceed, fatal := it.rt.Resume()
	if fatal {
		it.current = nil
		return true, nil
	}
	if !proceed {
		return false, nil
	}

	n := it.current
	switch n.Type {
	case ast.STATEMENT:
		it.current = n.FirstChild
		return it.Step()

	case ast.IF:
		return it.stepIf(n)

	case ast.ELSEIF, ast.ELSE:
		// Reached by falling out of a taken branch's body: skip to ENDIF.
		end := scanForward(n, ifOpener, ifCloser)
		if end == nil {
			return it.fail(values.NewRunTimeError("unmatched if", n))
		}
		it.scope.Pop()
		it.current = end.NextSibling
		return false, nil

	case ast.ENDIF:
		it.scope.Pop()
		it.current = n.NextSibling
		return false, nil

	case ast.WHILE:
		return it.stepWhile(n)

	case ast.ENDWHILE:
		start := scanBackward(n, whileOpener, whileCloser)
		if start == nil {
			return it.fail(values.NewRunTimeError("unmatched endwhile", n))
		}
		it.current = start
		return false, nil

	case ast.FOR:
		return it.stepFor(n)

	case ast.FOREACH:
		return it.stepForeach(n)

	case ast.ENDFOR:
		start := scanBackward(n, forOpeners, forCloser)
		if start == nil {
			return it.fail(values.NewRunTimeError("unmatched endfor", n))
		}
		it.current = start
		return false, nil

	case ast.BREAK:
		end := scanForward(n, loopOpeners, loopClosers)
		if end == nil {
			return it.fail(values.NewRunTimeError("break outside loop", n))
		}
		opener := scanBackward(end, loopOpeners, loopClosers)
		if opener != nil {
			it.scope.UnwindTo(opener)
		}
		it.scope.Pop()
		it.current = end.NextSibling
		return false, nil

	case ast.CONTINUE:
		start := scanBackward(n, loopOpeners, loopClosers)
		if start == nil {
			return it.fail(values.NewRunTimeError("continue outside loop", n))
		}
		it.scope.UnwindTo(start)
		it.current = start
		return false, nil

	case ast.STOP:
		it.current = nil
		return true, nil

	case ast.REPLAY:
		it.current = it.root.FirstChild
		it.scope = scope.New()
		return false, nil

	case ast.COMMAND, ast.QUIET, ast.FORCE:
		return it.stepCommand(n)

	default:
		return it.fail(values.NewRunTimeError("unexpected node "+n.Type.String(), n))
	}
}

func (it *Interpreter) fail(err *values.ScriptError) (bool, *values.ScriptError) {
	it.current = nil
	if it.rt.Logger != nil {
		it.rt.Logger.Printf("script terminated: %s", err.Error())
	}
	return true, err
}

func (it *Interpreter) evalCondition(n *ast.Node) (values.Value, *values.ScriptError) {
	return evalExpr(n, it.rt.Expressions, it.ctx(), false)
}

func (it *Interpreter) stepIf(n *ast.Node) (bool, *values.ScriptError) {
	it.scope.Push(n)
	cur := n
	for {
		v, err := it.evalCondition(cur.FirstChild)
		if err != nil {
			return it.fail(err)
		}
		if v.Truthy() {
			it.current = cur.NextSibling
			return false, nil
		}
		next := scanIfBranch(cur)
		if next == nil {
			return it.fail(values.NewRunTimeError("unmatched if", n))
		}
		switch next.Type {
		case ast.ENDIF:
			it.scope.Pop()
			it.current = next.NextSibling
			return false, nil
		case ast.ELSE:
			it.current = next.NextSibling
			return false, nil
		default: // ELSEIF
			cur = next
		}
	}
}

func (it *Interpreter) stepWhile(n *ast.Node) (bool, *values.ScriptError) {
	first := it.scope.Top() != n
	if first {
		it.scope.Push(n)
	}
	v, err := it.evalCondition(n.FirstChild)
	if err != nil {
		return it.fail(err)
	}
	if v.Truthy() {
		it.current = n.NextSibling
		return false, nil
	}
	end := scanForward(n, whileOpener, whileCloser)
	if end == nil {
		return it.fail(values.NewRunTimeError("unmatched while", n))
	}
	it.scope.Pop()
	it.current = end.NextSibling
	return false, nil
}

func (it *Interpreter) stepFor(n *ast.Node) (bool, *values.ScriptError) {
	first := it.scope.Top() != n
	var i int64
	if first {
		it.scope.Push(n)
		i = 0
	} else {
		bound, _ := it.scope.Get(iterVar)
		v, err := bound.ResolveAs(values.KindInt, "", it.ctx())
		if err != nil {
			return it.fail(err)
		}
		i = v.(values.Int).Val + 1
	}

	countVal, err := argument.FromNode(n.FirstChild).ResolveAs(values.KindInt, "", it.ctx())
	if err != nil {
		return it.fail(err)
	}
	limit := countVal.(values.Int).Val

	if i < limit {
		it.scope.Bind(iterVar, argument.Virtual(strconv.FormatInt(i, 10)))
		it.current = n.NextSibling
		return false, nil
	}

	end := scanForward(n, forOpeners, forCloser)
	if end == nil {
		return it.fail(values.NewRunTimeError("unmatched for", n))
	}
	it.scope.Pop()
	it.current = end.NextSibling
	return false, nil
}

func (it *Interpreter) stepForeach(n *ast.Node) (bool, *values.ScriptError) {
	first := it.scope.Top() != n
	var idx int
	if first {
		it.scope.Push(n)
		idx = 0
	} else {
		bound, _ := it.scope.Get(iterVar)
		v, err := bound.ResolveAs(values.KindInt, "", it.ctx())
		if err != nil {
			return it.fail(err)
		}
		idx = int(v.(values.Int).Val) + 1
	}

	listName := n.FirstChild.Lexeme
	elem, ok := it.rt.Lists.IndexGet(listName, idx)
	if !ok {
		end := scanForward(n, forOpeners, forCloser)
		if end == nil {
			return it.fail(values.NewRunTimeError("unmatched foreach", n))
		}
		it.scope.Pop()
		it.current = end.NextSibling
		return false, nil
	}

	it.scope.Bind(iterVar, argument.Virtual(strconv.Itoa(idx)))
	it.scope.Bind(n.Lexeme, elem)
	it.current = n.NextSibling
	return false, nil
}

func (it *Interpreter) stepCommand(n *ast.Node) (bool, *values.ScriptError) {
	cmdNode := n
	var flags command.Flags
	for cmdNode.Type == ast.QUIET || cmdNode.Type == ast.FORCE {
		if cmdNode.Type == ast.QUIET {
			flags.Quiet = true
		} else {
			flags.Force = true
		}
		cmdNode = cmdNode.FirstChild
	}

	args := buildArgs(cmdNode)
	ctx := it.ctx()
	ctx.Spawn = func(keyword string, spawnArgs []string) {
		insertPoint := n
		for _, a := range spawnArgs {
			cmd := ast.New(ast.COMMAND, keyword)
			cmd.AppendChild(ast.New(ast.OPERAND, a))
			insertPoint.InsertAfter(cmd)
			insertPoint = cmd
		}
	}
	result := command.Dispatch(it.cmds, it.rt, it.sink, cmdNode.Lexeme, flags, args, ctx)

	if result.Err != nil {
		return it.fail(result.Err)
	}
	if !result.Consumed {
		return false, nil
	}
	it.current = n.NextSibling
	return false, nil
}
