package eval

import (
	"strconv"

	"uosteam/argument"
	"uosteam/ast"
	"uosteam/runtime"
	"uosteam/values"
)

// kindForLiteral maps an AST literal node type to the Kind its token should
// be coerced as.
func kindForLiteral(t ast.NodeType) values.Kind {
	switch t {
	case ast.INTEGER:
		return values.KindInt
	case ast.SERIAL:
		return values.KindSerial
	case ast.DOUBLE:
		return values.KindDouble
	default:
		return values.KindString
	}
}

func buildArgs(n *ast.Node) []*argument.Argument {
	children := n.Children()
	args := make([]*argument.Argument, 0, len(children))
	for _, c := range children {
		args = append(args, argument.FromNode(c))
	}
	return args
}

// evalExpr evaluates an expression subtree rooted at n.
func evalExpr(n *ast.Node, exprs *runtime.ExprRegistry, ctx *argument.Context, quiet bool) (values.Value, *values.ScriptError) {
	if n == nil {
		return nil, values.NewRunTimeError("missing expression", nil)
	}

	switch n.Type {
	case ast.NOT:
		v, err := evalExpr(n.FirstChild, exprs, ctx, quiet)
		if err != nil {
			return nil, err
		}
		return values.NewBool(!v.Truthy()), nil

	case ast.UNARY_EXPRESSION:
		handler, ok := exprs.Get(n.Lexeme)
		if !ok {
			return nil, values.NewRunTimeError("unknown expression \""+n.Lexeme+"\"", n)
		}
		args := argument.NewList(buildArgs(n), 0, nil, ctx)
		return handler(args, quiet)

	case ast.BINARY_EXPRESSION:
		children := n.Children()
		if len(children) != 3 {
			return nil, values.NewRunTimeError("malformed binary expression", n)
		}
		lhs, err := evalExpr(children[0], exprs, ctx, quiet)
		if err != nil {
			return nil, err
		}
		rhs, err := evalExpr(children[2], exprs, ctx, quiet)
		if err != nil {
			return nil, err
		}
		result, err := compare(lhs, rhs, children[1].Type)
		if err != nil {
			return nil, err
		}
		return values.NewBool(result), nil

	case ast.LOGICAL_EXPRESSION:
		children := n.Children()
		if len(children) == 0 {
			return nil, values.NewRunTimeError("empty logical expression", n)
		}
		acc, err := evalExpr(children[0], exprs, ctx, quiet)
		if err != nil {
			return nil, err
		}
		for i := 1; i+1 < len(children); i += 2 {
			rhsVal, err := evalExpr(children[i+1], exprs, ctx, quiet)
			if err != nil {
				return nil, err
			}
			switch children[i].Type {
			case ast.AND:
				acc = values.NewBool(acc.Truthy() && rhsVal.Truthy())
			case ast.OR:
				acc = values.NewBool(acc.Truthy() || rhsVal.Truthy())
			default:
				return nil, values.NewRunTimeError("expected AND/OR in logical expression", n)
			}
		}
		return acc, nil

	default:
		return argument.FromNode(n).ResolveAs(kindForLiteral(n.Type), "", ctx)
	}
}

// compare implements comparison/coercion rules: operands auto-coerce
// toward the lhs type, except a double rhs promotes the lhs and a bool rhs
// demotes the lhs.
func compare(lhs, rhs values.Value, op ast.NodeType) (bool, *values.ScriptError) {
	lhs, rhs, err := reconcileKinds(lhs, rhs)
	if err != nil {
		return false, err
	}

	switch op {
	case ast.EQUAL:
		return valuesEqual(lhs, rhs), nil
	case ast.NOT_EQUAL:
		return !valuesEqual(lhs, rhs), nil
	case ast.LESS_THAN, ast.LESS_THAN_OR_EQUAL, ast.GREATER_THAN, ast.GREATER_THAN_OR_EQUAL:
		cmp, err := numericCompare(lhs, rhs)
		if err != nil {
			return false, err
		}
		switch op {
		case ast.LESS_THAN:
			return cmp < 0, nil
		case ast.LESS_THAN_OR_EQUAL:
			return cmp <= 0, nil
		case ast.GREATER_THAN:
			return cmp > 0, nil
		default:
			return cmp >= 0, nil
		}
	default:
		return false, values.NewRunTimeError("unknown comparison operator", nil)
	}
}

func reconcileKinds(lhs, rhs values.Value) (values.Value, values.Value, *values.ScriptError) {
	if rhs.Kind() == values.KindDouble && lhs.Kind() != values.KindDouble {
		f, err := toFloat(lhs)
		if err != nil {
			return nil, nil, err
		}
		return values.NewDouble(f), rhs, nil
	}
	if rhs.Kind() == values.KindBool && lhs.Kind() != values.KindBool {
		return values.NewBool(lhs.Truthy()), rhs, nil
	}
	if lhs.Kind() == rhs.Kind() {
		return lhs, rhs, nil
	}
	coerced, err := values.CoerceTo(rhs.String(), lhs.Kind())
	if err != nil {
		return nil, nil, err
	}
	return lhs, coerced, nil
}

func toFloat(v values.Value) (float64, *values.ScriptError) {
	switch val := v.(type) {
	case values.Int:
		return float64(val.Val), nil
	case values.Serial:
		return float64(val.Val), nil
	case values.Double:
		return val.Val, nil
	case values.Bool:
		if val.Val {
			return 1, nil
		}
		return 0, nil
	case values.Str:
		f, err := strconv.ParseFloat(val.Val, 64)
		if err != nil {
			return 0, values.NewTypeConversionError("cannot compare string \"" + val.Val + "\" numerically")
		}
		return f, nil
	default:
		return 0, values.NewTypeConversionError("unsupported operand kind")
	}
}

func valuesEqual(lhs, rhs values.Value) bool {
	if lhs.Kind() == values.KindString || rhs.Kind() == values.KindString {
		return lhs.String() == rhs.String()
	}
	lf, errL := toFloat(lhs)
	rf, errR := toFloat(rhs)
	if errL != nil || errR != nil {
		return lhs.String() == rhs.String()
	}
	return lf == rf
}

func numericCompare(lhs, rhs values.Value) (int, *values.ScriptError) {
	lf, err := toFloat(lhs)
	if err != nil {
		return 0, err
	}
	rf, err := toFloat(rhs)
	if err != nil {
		return 0, err
	}
	switch {
	case lf < rf:
		return -1, nil
	case lf > rf:
		return 1, nil
	default:
		return 0, nil
	}
}
