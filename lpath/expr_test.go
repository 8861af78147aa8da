package lpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExprNavigation(t *testing.T) {
	expr := MustParse("::root::item*::name")
	if expr.Depth() != 3 {
		t.Errorf("depth mismatched! want 3, got %d", expr.Depth())
	}
	if !expr.IsPattern() {
		t.Errorf("expression should be a pattern")
	}
	if base := expr.Base(); base.Content != "name" || base.Pattern {
		t.Errorf("base mismatched! got %+v", base)
	}
	parent, ok := expr.Parent()
	if !ok {
		t.Fatalf("parent expected")
	}
	if diff := cmp.Diff(MustParse("::root::item*"), parent); diff != "" {
		t.Errorf("parent mismatched (-want +got):\n%s", diff)
	}
	parent.Segments[0].Content = "changed"
	if expr.Segments[0].Content != "root" {
		t.Errorf("parent shares segments with its child")
	}
	if _, ok := MustParse("a").Parent(); ok {
		t.Errorf("single segment expression has no parent")
	}
	if MustParse("a::b").IsPattern() {
		t.Errorf("literal expression reported as pattern")
	}
}

func TestSegmentUnescape(t *testing.T) {
	tests := []struct {
		Expr string
		Want []string
	}{
		{
			Expr: `a\::b::c`,
			Want: []string{"a::b", "c"},
		},
		{
			Expr: `\::\::`,
			Want: []string{"::::"},
		},
		{
			Expr: "plain",
			Want: []string{"plain"},
		},
	}
	for _, c := range tests {
		expr := MustParse(c.Expr)
		var got []string
		for _, s := range expr.Segments {
			got = append(got, s.Unescape())
		}
		if diff := cmp.Diff(c.Want, got); diff != "" {
			t.Errorf("%s: unescaped segments mismatched (-want +got):\n%s", c.Expr, diff)
		}
	}
}

func TestDebug(t *testing.T) {
	tests := []struct {
		Expr string
		Want string
	}{
		{
			Expr: "a::b::c",
			Want: "relative(literal(a), literal(b), literal(c))",
		},
		{
			Expr: "::a::*::c",
			Want: "absolute(literal(a), pattern(*), literal(c))",
		},
		{
			Expr: `a\::b`,
			Want: `relative(literal(a\::b))`,
		},
	}
	for _, c := range tests {
		got := Debug(MustParse(c.Expr))
		if got != c.Want {
			t.Errorf("%s: debug mismatched! want %s, got %s", c.Expr, c.Want, got)
		}
	}
}
