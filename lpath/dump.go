package lpath

import (
	"io"
	"strings"
)

// Debug returns a nested textual representation of expr, for example
// absolute(literal(a), pattern(b*)).
func Debug(expr Expr) string {
	var str strings.Builder
	debugExpr(&str, expr)
	return str.String()
}

func debugExpr(w io.Writer, expr Expr) {
	if expr.Absolute {
		io.WriteString(w, "absolute")
	} else {
		io.WriteString(w, "relative")
	}
	io.WriteString(w, "(")
	for i := range expr.Segments {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		debugSegment(w, expr.Segments[i])
	}
	io.WriteString(w, ")")
}

func debugSegment(w io.Writer, seg Segment) {
	if seg.Pattern {
		io.WriteString(w, "pattern")
	} else {
		io.WriteString(w, "literal")
	}
	io.WriteString(w, "(")
	io.WriteString(w, seg.Content)
	io.WriteString(w, ")")
}
