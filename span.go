package intexpr

import "strconv"

// Span is a half-open range [Start, End) of rune offsets into the source
// text. Offsets count runes from 0, not bytes.
type Span struct {
	Start int
	End   int
}

// NoSpan marks conditions with no natural source position, namely running out
// of input.
var NoSpan = Span{Start: -1, End: -1}

// Valid returns whether s refers to a position in the source.
func (s Span) Valid() bool {
	return 0 <= s.Start && s.Start <= s.End
}

// Len returns the number of runes covered by s.
func (s Span) Len() int {
	if !s.Valid() {
		return 0
	}
	return s.End - s.Start
}

// Union returns the span from the start of s to the end of t. If either span
// is invalid, the result is the other one.
func (s Span) Union(t Span) Span {
	switch {
	case !s.Valid():
		return t
	case !t.Valid():
		return s
	}
	return Span{Start: s.Start, End: t.End}
}

func (s Span) String() string {
	if !s.Valid() {
		return "end of input"
	}
	return "[" + strconv.Itoa(s.Start) + "," + strconv.Itoa(s.End) + ")"
}

// Node is a value paired with the span of source text it was derived from.
type Node[T any] struct {
	Val  T
	Span Span
}
