package values

import "strconv"

// Int is a signed integer value. UO Steam treats all non-serial numeric
// arguments (counts, ranges, colors, skill indices) as Int.
type Int struct {
	Val int64
}

func NewInt(v int64) Int { return Int{Val: v} }

func (i Int) Kind() Kind     { return KindInt }
func (i Int) String() string { return strconv.FormatInt(i.Val, 10) }
func (i Int) Truthy() bool   { return i.Val != 0 }
