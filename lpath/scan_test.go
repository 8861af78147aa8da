package lpath

import (
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		Input  string
		Tokens []Token
	}{
		{
			Input: "a::b",
			Tokens: []Token{
				{Literal: "a", Type: Char},
				{Literal: "::", Type: Separator},
				{Literal: "b", Type: Char},
				{Type: EOF},
			},
		},
		{
			Input: `x\::*`,
			Tokens: []Token{
				{Literal: "x", Type: Char},
				{Literal: `\::`, Type: Escape},
				{Literal: "*", Type: Glob},
				{Type: EOF},
			},
		},
		{
			Input: `?[{\:`,
			Tokens: []Token{
				{Literal: "?", Type: Glob},
				{Literal: "[", Type: Glob},
				{Literal: "{", Type: Glob},
				{Literal: `\`, Type: Invalid},
				{Literal: ":", Type: Char},
				{Type: EOF},
			},
		},
		{
			Input: ":::",
			Tokens: []Token{
				{Literal: "::", Type: Separator},
				{Literal: ":", Type: Char},
				{Type: EOF},
			},
		},
		{
			Input: "ü\xff",
			Tokens: []Token{
				{Literal: "ü", Type: Char},
				{Literal: "\xff", Type: Char},
				{Type: EOF},
			},
		},
	}
	for _, c := range tests {
		scan := Scan(c.Input)
		for i, want := range c.Tokens {
			got := scan.Scan()
			if got.Type != want.Type || got.Literal != want.Literal {
				t.Errorf("%q: token %d mismatched! want %s, got %s", c.Input, i, want, got)
				break
			}
		}
	}
}

func TestScanPosition(t *testing.T) {
	var (
		scan = Scan("ab::\ncd")
		want = []Position{
			{Line: 1, Column: 1, Offset: 0},
			{Line: 1, Column: 2, Offset: 1},
			{Line: 1, Column: 3, Offset: 2},
			{Line: 1, Column: 5, Offset: 4},
			{Line: 2, Column: 1, Offset: 5},
			{Line: 2, Column: 2, Offset: 6},
			{Line: 2, Column: 3, Offset: 7},
		}
	)
	for i := range want {
		tok := scan.Scan()
		if tok.Position != want[i] {
			t.Errorf("token %d (%s): position mismatched! want %+v, got %+v", i, tok, want[i], tok.Position)
		}
	}
}

func TestScanEOFRepeats(t *testing.T) {
	scan := Scan("a")
	scan.Scan()
	for range 3 {
		if tok := scan.Scan(); tok.Type != EOF {
			t.Fatalf("EOF expected, got %s", tok)
		}
	}
}
