package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/lutaml/lutaml-path/lpath"
	"github.com/midbel/cli"
)

var checkCmd = cli.Command{
	Name:    "check",
	Summary: "validate path expressions read from files, one per line",
	Handler: &CheckCmd{},
}

type CheckCmd struct {
	FailFast bool
	Quiet    bool
}

func (c *CheckCmd) Run(args []string) error {
	set := flag.NewFlagSet("check", flag.ContinueOnError)
	set.BoolVar(&c.FailFast, "fail-fast", false, "stop checking as soon as first invalid expression is encountered")
	set.BoolVar(&c.Quiet, "quiet", false, "only report invalid expressions")
	if err := set.Parse(args); err != nil {
		return err
	}
	var lines iter.Seq2[exprLine, error]
	if set.NArg() == 0 {
		lines = scanLines("<stdin>", os.Stdin)
	} else {
		lines = iterLines(set.Args())
	}
	invalid, err := c.check(os.Stdout, lines)
	if err != nil {
		return err
	}
	if invalid > 0 {
		return errFail
	}
	return nil
}

func (c *CheckCmd) check(w io.Writer, lines iter.Seq2[exprLine, error]) (int, error) {
	var invalid int
	for line, err := range lines {
		if err != nil {
			return invalid, err
		}
		_, perr := lpath.ParseString(line.Text)
		if perr == nil {
			if !c.Quiet {
				fmt.Fprintf(w, "%s:%d: ok", line.File, line.Line)
				fmt.Fprintln(w)
			}
			continue
		}
		invalid++
		var serr lpath.SyntaxError
		if errors.As(perr, &serr) {
			fmt.Fprintf(w, "%s:%d:%d: %s", line.File, line.Line, serr.Column, serr.Cause)
		} else {
			fmt.Fprintf(w, "%s:%d: %s", line.File, line.Line, perr)
		}
		fmt.Fprintln(w)
		if c.FailFast {
			break
		}
	}
	return invalid, nil
}

type exprLine struct {
	File string
	Line int
	Text string
}

func iterLines(files []string) iter.Seq2[exprLine, error] {
	fn := func(yield func(exprLine, error) bool) {
		for _, f := range files {
			r, err := os.Open(f)
			if err != nil {
				yield(exprLine{File: f}, err)
				return
			}
			for line, err := range scanLines(f, r) {
				if !yield(line, err) {
					r.Close()
					return
				}
			}
			r.Close()
		}
	}
	return fn
}

func scanLines(file string, r io.Reader) iter.Seq2[exprLine, error] {
	fn := func(yield func(exprLine, error) bool) {
		var (
			scan = bufio.NewScanner(r)
			num  int
		)
		for scan.Scan() {
			num++
			text := strings.TrimRight(scan.Text(), "\r")
			if strings.TrimSpace(text) == "" {
				continue
			}
			line := exprLine{
				File: file,
				Line: num,
				Text: text,
			}
			if !yield(line, nil) {
				return
			}
		}
		if err := scan.Err(); err != nil {
			yield(exprLine{File: file}, err)
		}
	}
	return fn
}
