package lpath

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrSyntax            = errors.New("invalid syntax")
	ErrEmpty             = errors.New("empty path expression")
	ErrTrailingSeparator = errors.New("separator not followed by a segment")
	ErrDoubleSeparator   = errors.New("consecutive separators")
	ErrEscape            = errors.New("escape not followed by separator")
)

type SyntaxError struct {
	Expr     string
	Cause    string
	Expected []string
	Err      error
	Position
}

func (e SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: %q: %s", e.Position, e.Expr, e.Cause)
	}
	return fmt.Sprintf("%s: %q: %s (expected %s)", e.Position, e.Expr, e.Cause, strings.Join(e.Expected, ", "))
}

func (e SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func (e SyntaxError) Unwrap() error {
	return e.Err
}

var expectSegment = []string{"character", "glob", escape}

type Option func(*Parser)

func WithTracer(tracer Tracer) Option {
	return func(p *Parser) {
		if tracer != nil {
			p.Tracer = tracer
		}
	}
}

// Parser reads a single path expression. A Parser is consumed by Parse and
// should not be reused.
type Parser struct {
	input string
	scan  *Scanner
	curr  Token
	peek  Token

	Tracer
}

func NewParser(str string, opts ...Option) *Parser {
	p := Parser{
		input:  str,
		scan:   Scan(str),
		Tracer: discardTracer{},
	}
	for _, o := range opts {
		o(&p)
	}
	p.next()
	p.next()
	return &p
}

func Parse(r io.Reader) (Expr, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return Expr{}, err
	}
	return ParseString(string(buf))
}

func ParseString(str string) (Expr, error) {
	return NewParser(str).Parse()
}

func MustParse(str string) Expr {
	expr, err := ParseString(str)
	if err != nil {
		panic(err)
	}
	return expr
}

func (p *Parser) Parse() (Expr, error) {
	p.Enter("path")
	defer p.Leave("path")

	var expr Expr
	if p.is(Separator) {
		expr.Absolute = true
		p.next()
	}
	seg, err := p.parseSegment(expr.Absolute)
	if err != nil {
		return Expr{}, err
	}
	expr.Segments = append(expr.Segments, seg)
	for p.is(Separator) {
		p.next()
		seg, err := p.parseSegment(true)
		if err != nil {
			return Expr{}, err
		}
		expr.Segments = append(expr.Segments, seg)
	}
	if !p.done() {
		return Expr{}, p.fail("path", ErrSyntax, "unexpected "+p.curr.String(), separator)
	}
	return expr, nil
}

func (p *Parser) parseSegment(afterSep bool) (Segment, error) {
	p.Enter("segment")
	defer p.Leave("segment")

	var (
		seg Segment
		str strings.Builder
	)
	for p.is(Char) || p.is(Glob) || p.is(Escape) {
		if p.is(Glob) {
			seg.Pattern = true
		}
		str.WriteString(p.curr.Literal)
		p.next()
	}
	if p.is(Invalid) {
		return seg, p.fail("segment", ErrEscape, "lone escape marker", escape)
	}
	if str.Len() == 0 {
		switch {
		case p.is(Separator):
			return seg, p.fail("segment", ErrDoubleSeparator, "separator not allowed here", expectSegment...)
		case afterSep:
			return seg, p.fail("segment", ErrTrailingSeparator, "missing segment at end of input", expectSegment...)
		default:
			return seg, p.fail("segment", ErrEmpty, "missing segment", expectSegment...)
		}
	}
	seg.Content = str.String()
	return seg, nil
}

func (p *Parser) fail(rule string, err error, cause string, expected ...string) error {
	e := SyntaxError{
		Expr:     p.input,
		Cause:    cause,
		Expected: expected,
		Err:      err,
		Position: p.curr.Position,
	}
	p.Error(rule, e)
	return e
}

func (p *Parser) is(kind rune) bool {
	return p.curr.Type == kind
}

func (p *Parser) done() bool {
	return p.is(EOF)
}

func (p *Parser) next() {
	p.curr = p.peek
	p.peek = p.scan.Scan()
}
