package lpath

import (
	"strings"
)

// Segment is one step of a path expression. Content is the text as written,
// escaped separators included.
type Segment struct {
	Content string
	Pattern bool
}

func (s Segment) String() string {
	return s.Content
}

// Unescape returns the content with every escaped separator replaced by a
// plain separator.
func (s Segment) Unescape() string {
	return strings.ReplaceAll(s.Content, escape, separator)
}

// Expr is a parsed path expression. It always holds at least one segment.
type Expr struct {
	Absolute bool
	Segments []Segment
}

func (e Expr) String() string {
	var str strings.Builder
	if e.Absolute {
		str.WriteString(separator)
	}
	for i := range e.Segments {
		if i > 0 {
			str.WriteString(separator)
		}
		str.WriteString(e.Segments[i].Content)
	}
	return str.String()
}

func (e Expr) Depth() int {
	return len(e.Segments)
}

func (e Expr) IsPattern() bool {
	for i := range e.Segments {
		if e.Segments[i].Pattern {
			return true
		}
	}
	return false
}

func (e Expr) Base() Segment {
	if len(e.Segments) == 0 {
		var s Segment
		return s
	}
	return e.Segments[len(e.Segments)-1]
}

func (e Expr) Parent() (Expr, bool) {
	if len(e.Segments) <= 1 {
		return Expr{}, false
	}
	parent := Expr{
		Absolute: e.Absolute,
		Segments: make([]Segment, len(e.Segments)-1),
	}
	copy(parent.Segments, e.Segments)
	return parent, true
}
