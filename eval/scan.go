package eval

import "uosteam/ast"

// scanForward walks n's following siblings, tracking nesting depth via
// openers/closers, and returns the first closer found at depth 0. Returns
// nil if no such closer exists (an unmatched construct).
func scanForward(n *ast.Node, openers, closers map[ast.NodeType]bool) *ast.Node {
	depth := 0
	for cur := n.NextSibling; cur != nil; cur = cur.NextSibling {
		switch {
		case openers[cur.Type]:
			depth++
		case closers[cur.Type]:
			if depth == 0 {
				return cur
			}
			depth--
		}
	}
	return nil
}

// scanBackward walks n's preceding siblings, tracking nesting depth via
// closers/openers (reversed relative to scanForward since we're walking
// the other direction), and returns the first opener found at depth 0.
func scanBackward(n *ast.Node, openers, closers map[ast.NodeType]bool) *ast.Node {
	depth := 0
	for cur := n.PrevSibling; cur != nil; cur = cur.PrevSibling {
		switch {
		case closers[cur.Type]:
			depth++
		case openers[cur.Type]:
			if depth == 0 {
				return cur
			}
			depth--
		}
	}
	return nil
}

// scanIfBranch walks forward from an IF/ELSEIF node looking for the next
// branch marker (ELSEIF/ELSE) or the matching ENDIF, all at depth 0;
// nested IF/ENDIF pairs are skipped over transparently.
func scanIfBranch(n *ast.Node) *ast.Node {
	depth := 0
	for cur := n.NextSibling; cur != nil; cur = cur.NextSibling {
		switch cur.Type {
		case ast.IF:
			depth++
		case ast.ENDIF:
			if depth == 0 {
				return cur
			}
			depth--
		case ast.ELSEIF, ast.ELSE:
			if depth == 0 {
				return cur
			}
		}
	}
	return nil
}

var loopOpeners = map[ast.NodeType]bool{
	ast.WHILE:   true,
	ast.FOR:     true,
	ast.FOREACH: true,
}

var loopClosers = map[ast.NodeType]bool{
	ast.ENDWHILE: true,
	ast.ENDFOR:   true,
}

var whileOpener = map[ast.NodeType]bool{ast.WHILE: true}
var whileCloser = map[ast.NodeType]bool{ast.ENDWHILE: true}
var forOpeners = map[ast.NodeType]bool{ast.FOR: true, ast.FOREACH: true}
var forCloser = map[ast.NodeType]bool{ast.ENDFOR: true}
var ifOpener = map[ast.NodeType]bool{ast.IF: true}
var ifCloser = map[ast.NodeType]bool{ast.ENDIF: true}
