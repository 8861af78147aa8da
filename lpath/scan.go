package lpath

import (
	"fmt"
	"unicode/utf8"
)

type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

const (
	EOF rune = -(1 + iota)
	Separator
	Escape
	Glob
	Char
	Invalid
)

type Token struct {
	Literal string
	Type    rune
	Position
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "<eof>"
	case Separator:
		return "<separator>"
	case Escape:
		return fmt.Sprintf("escape(%s)", t.Literal)
	case Glob:
		return fmt.Sprintf("glob(%s)", t.Literal)
	case Char:
		return fmt.Sprintf("char(%s)", t.Literal)
	case Invalid:
		return fmt.Sprintf("invalid(%s)", t.Literal)
	default:
		return "<unknown>"
	}
}

// Scanner splits a path expression into single character tokens. An escaped
// separator is reported as one token so that it never ends a segment.
type Scanner struct {
	input string
	char  rune
	width int

	Position
}

func Scan(str string) *Scanner {
	scan := &Scanner{
		input: str,
	}
	scan.Line = 1
	scan.Column = 1
	scan.decode()
	return scan
}

func (s *Scanner) Scan() Token {
	var tok Token
	tok.Position = s.Position
	if s.done() {
		tok.Type = EOF
		return tok
	}
	switch {
	case s.char == backslash:
		s.scanEscape(&tok)
	case s.char == colon && s.peek() == colon:
		s.scanSeparator(&tok)
	case isGlob(s.char):
		tok.Type = Glob
		tok.Literal = s.take(1)
	default:
		tok.Type = Char
		tok.Literal = s.take(1)
	}
	return tok
}

func (s *Scanner) scanEscape(tok *Token) {
	if s.match(escape) {
		tok.Type = Escape
		tok.Literal = s.take(len(escape))
		return
	}
	tok.Type = Invalid
	tok.Literal = s.take(1)
}

func (s *Scanner) scanSeparator(tok *Token) {
	tok.Type = Separator
	tok.Literal = s.take(len(separator))
}

func (s *Scanner) match(str string) bool {
	rest := s.input[s.Offset:]
	return len(rest) >= len(str) && rest[:len(str)] == str
}

// take consumes n runes and returns the raw text covering them.
func (s *Scanner) take(n int) string {
	beg := s.Offset
	for i := 0; i < n && !s.done(); i++ {
		s.read()
	}
	return s.input[beg:s.Offset]
}

func (s *Scanner) read() {
	if s.char == '\n' {
		s.Line++
		s.Column = 0
	}
	s.Column++
	s.Offset += s.width
	s.decode()
}

func (s *Scanner) decode() {
	if s.Offset >= len(s.input) {
		s.char, s.width = utf8.RuneError, 0
		return
	}
	s.char, s.width = utf8.DecodeRuneInString(s.input[s.Offset:])
}

func (s *Scanner) peek() rune {
	next := s.Offset + s.width
	if next >= len(s.input) {
		return utf8.RuneError
	}
	c, _ := utf8.DecodeRuneInString(s.input[next:])
	return c
}

func (s *Scanner) done() bool {
	return s.Offset >= len(s.input)
}

const (
	separator = "::"
	escape    = `\::`
)

const (
	colon     = ':'
	backslash = '\\'
	star      = '*'
	question  = '?'
	lsquare   = '['
	lcurly    = '{'
)

func isGlob(c rune) bool {
	return c == star || c == question || c == lsquare || c == lcurly
}
