package argument

import (
	"strings"

	"uosteam/values"
)

// List is the lazily-resolved argument view over a command invocation's
// operand nodes. It tracks a cursor so NextAs can be called once per
// expected name in usage-string order, falling back to the local-value
// map's per-name default when the caller runs out of supplied arguments
// for an optional position.
type List struct {
	args          []*Argument
	mandatoryCount int
	expectedNames []string
	cursor        int
	ctx           *Context
}

// NewList builds an argument list from resolved operand arguments, the
// usage string's mandatory-argument count, and its ordered argument names
// ( usage-string parsing feeds these two directly).
func NewList(args []*Argument, mandatoryCount int, expectedNames []string, ctx *Context) *List {
	return &List{
		args:          args,
		mandatoryCount: mandatoryCount,
		expectedNames: expectedNames,
		ctx:           ctx,
	}
}

// Len reports how many arguments were actually supplied.
func (l *List) Len() int { return len(l.args) }

// nameFor returns the expected name for the given position, or "" if the
// usage string didn't declare one (e.g. variadic trailing positions).
func (l *List) nameFor(pos int) string {
	if pos < 0 || pos >= len(l.expectedNames) {
		return ""
	}
	return l.expectedNames[pos]
}

// NextAs resolves the next argument as kind, advancing the cursor. If no
// argument remains at this position and the position is optional (beyond
// mandatoryCount), it consults the local-value map's named default first,
// then falls back to kind's typed zero value rather than erroring — an
// exhausted optional position is not a script mistake.
func (l *List) NextAs(kind values.Kind) (values.Value, *values.ScriptError) {
	pos := l.cursor
	name := l.nameFor(pos)

	if pos >= len(l.args) {
		if pos < l.mandatoryCount {
			return nil, values.NewSyntaxError("missing required argument " + name)
		}
		l.cursor++
		if l.ctx.LocalValue != nil {
			if def, ok := l.ctx.LocalValue.Default(name); ok {
				return values.CoerceTo(def, kind)
			}
		}
		return zeroValue(kind), nil
	}

	arg := l.args[pos]
	l.cursor++
	return arg.ResolveAs(kind, name, l.ctx)
}

// zeroValue returns kind's typed default: 0, the null serial, the empty
// string, false, or 0.0.
func zeroValue(kind values.Kind) values.Value {
	switch kind {
	case values.KindSerial:
		return values.NewSerial(0)
	case values.KindString:
		return values.NewStr("")
	case values.KindBool:
		return values.NewBool(false)
	case values.KindDouble:
		return values.NewDouble(0)
	default:
		return values.NewInt(0)
	}
}

// NextAsArray splits the next argument on commas and resolves each piece as
// kind, used by commands like `walk` that accept a direction list in a
// single operand (virtual-argument-explosion note). A missing optional
// position yields a nil slice, not the position's default.
func (l *List) NextAsArray(kind values.Kind) ([]values.Value, *values.ScriptError) {
	pos := l.cursor
	if pos >= len(l.args) {
		if pos < l.mandatoryCount {
			return nil, values.NewSyntaxError("missing required argument " + l.nameFor(pos))
		}
		l.cursor++
		return nil, nil
	}
	raw := l.args[pos].Literal
	l.cursor++

	parts := strings.Split(raw, ",")
	out := make([]values.Value, 0, len(parts))
	name := l.nameFor(pos)
	for _, p := range parts {
		virt := Virtual(strings.TrimSpace(p))
		v, err := virt.ResolveAs(kind, name, l.ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Spawn re-enqueues keyword as new single-argument statements immediately
// following the one currently dispatching, used by commands like `walk`
// that explode a comma-separated list into individual statements. A no-op
// if the evaluator context wired in no spawner (e.g. a unit test driving a
// handler directly).
func (l *List) Spawn(keyword string, args []string) {
	if l.ctx.Spawn != nil {
		l.ctx.Spawn(keyword, args)
	}
}

// IndexGet resolves the argument at position i as kind without moving the
// cursor, used when a command needs to look ahead or re-read a position
// (e.g. to branch on an argument's kind before consuming it).
func (l *List) IndexGet(i int, kind values.Kind) (values.Value, *values.ScriptError) {
	if i < 0 || i >= len(l.args) {
		return nil, values.NewSyntaxError("argument index out of range")
	}
	return l.args[i].ResolveAs(kind, l.nameFor(i), l.ctx)
}
