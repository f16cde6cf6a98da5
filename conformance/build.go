package conformance

import (
	"strconv"

	"uosteam/ast"
)

// buildAST turns a fixture's statement list into the flat sibling chain the
// evaluator expects: control constructs and their bodies all live at
// the same nesting level, with scanForward/scanBackward in eval tracking
// true nesting by depth over opener/closer node types rather than by tree
// structure, matching eval/interpreter_test.go's hand-built trees.
func buildAST(stmts []Stmt) *ast.Node {
	root := ast.New(ast.STATEMENT, "")
	appendStmts(root, stmts)
	return root
}

func appendStmts(root *ast.Node, stmts []Stmt) {
	for _, s := range stmts {
		appendStmt(root, s)
	}
}

func appendStmt(root *ast.Node, s Stmt) {
	switch {
	case s.Stop:
		root.AppendChild(ast.New(ast.STOP, ""))
	case s.Break:
		root.AppendChild(ast.New(ast.BREAK, ""))
	case s.Continue:
		root.AppendChild(ast.New(ast.CONTINUE, ""))
	case s.For != nil:
		forNode := ast.New(ast.FOR, "")
		forNode.AppendChild(ast.New(ast.INTEGER, strconv.Itoa(*s.For)))
		root.AppendChild(forNode)
		appendStmts(root, s.Body)
		root.AppendChild(ast.New(ast.ENDFOR, ""))
	case s.Foreach != nil:
		feNode := ast.New(ast.FOREACH, s.Foreach.Var)
		feNode.AppendChild(ast.New(ast.OPERAND, s.Foreach.List))
		root.AppendChild(feNode)
		appendStmts(root, s.Body)
		root.AppendChild(ast.New(ast.ENDFOR, ""))
	case s.If != nil:
		ifNode := ast.New(ast.IF, "")
		ifNode.AppendChild(buildCond(*s.If))
		root.AppendChild(ifNode)
		appendStmts(root, s.Body)
		root.AppendChild(ast.New(ast.ENDIF, ""))
	case s.While != nil:
		whileNode := ast.New(ast.WHILE, "")
		whileNode.AppendChild(buildCond(*s.While))
		root.AppendChild(whileNode)
		appendStmts(root, s.Body)
		root.AppendChild(ast.New(ast.ENDWHILE, ""))
	default:
		cmd := ast.New(ast.COMMAND, s.Command)
		for _, a := range s.Args {
			cmd.AppendChild(ast.New(ast.OPERAND, a))
		}
		switch {
		case s.Quiet:
			q := ast.New(ast.QUIET, "")
			q.AppendChild(cmd)
			root.AppendChild(q)
		case s.Force:
			f := ast.New(ast.FORCE, "")
			f.AppendChild(cmd)
			root.AppendChild(f)
		default:
			root.AppendChild(cmd)
		}
	}
}

// buildCond builds the BINARY_EXPRESSION tree a Cond describes: a named
// unary expression on the left, a comparison operator, and a literal on
// the right.
func buildCond(c Cond) *ast.Node {
	bin := ast.New(ast.BINARY_EXPRESSION, "")
	bin.AppendChild(ast.New(ast.UNARY_EXPRESSION, c.Lhs))
	bin.AppendChild(ast.New(opNodeType(c.Op), ""))
	bin.AppendChild(ast.New(literalType(c.Rhs), c.Rhs))
	return bin
}

func opNodeType(op string) ast.NodeType {
	switch op {
	case "<":
		return ast.LESS_THAN
	case "<=":
		return ast.LESS_THAN_OR_EQUAL
	case ">":
		return ast.GREATER_THAN
	case ">=":
		return ast.GREATER_THAN_OR_EQUAL
	case "!=":
		return ast.NOT_EQUAL
	default:
		return ast.EQUAL
	}
}

// literalType guesses the literal's AST node type from its surface form:
// plain digits parse as INTEGER, everything else as STRING. Fixtures
// needing a SERIAL or DOUBLE comparison literal are not produced by any
// scenario this runner covers today.
func literalType(tok string) ast.NodeType {
	if tok == "" {
		return ast.STRING
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return ast.STRING
		}
	}
	return ast.INTEGER
}
