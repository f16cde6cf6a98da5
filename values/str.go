package values

import "strings"

// Str is a string value. UO Steam is case-insensitive, so every Str
// returned from alias/argument resolution is already lowercased.
type Str struct {
	Val string
}

func NewStr(v string) Str { return Str{Val: strings.ToLower(v)} }

func (s Str) Kind() Kind     { return KindString }
func (s Str) String() string { return s.Val }
func (s Str) Truthy() bool   { return s.Val != "" }
