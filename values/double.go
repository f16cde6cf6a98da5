package values

import "strconv"

// Double is a floating-point value (the AST's DOUBLE literal kind, ).
// Most commands never request this kind directly; it exists for binary
// comparisons where a literal like `3.5` forces the comparison to promote
// the other operand.
type Double struct {
	Val float64
}

func (d Double) Kind() Kind     { return KindDouble }
func (d Double) String() string { return strconv.FormatFloat(d.Val, 'g', -1, 64) }
func (d Double) Truthy() bool   { return d.Val != 0 }

// NewDouble wraps v as a Double value.
func NewDouble(v float64) Double { return Double{Val: v} }
