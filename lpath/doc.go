// Package lpath parses path expressions made of segments joined by "::".
//
// An expression starting with "::" is absolute. A segment containing one of
// the glob characters *, ?, [ or { is a pattern, otherwise it is a literal
// name. The sequence \:: inside a segment stands for a literal "::" and does
// not split the expression; it is kept as written in Segment.Content.
//
//	a::b::c     relative(literal(a), literal(b), literal(c))
//	::a::*::c   absolute(literal(a), pattern(*), literal(c))
//	a\::b       relative(literal(a\::b))
//
// Matching patterns and resolving expressions against data is left to the
// caller.
package lpath
