package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lutaml/lutaml-path/lpath"
	"github.com/midbel/cli"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYaml = "yaml"
)

var parseCmd = cli.Command{
	Name:    "parse",
	Summary: "parse path expressions and print their segments",
	Handler: &ParseCmd{},
}

type ParseCmd struct {
	Format  string
	NoColor bool
}

func (c *ParseCmd) Run(args []string) error {
	set := flag.NewFlagSet("parse", flag.ContinueOnError)
	set.StringVar(&c.Format, "format", formatText, "output format (text, yaml)")
	set.BoolVar(&c.NoColor, "no-color", false, "disable colored output")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() == 0 {
		return fmt.Errorf("no path expression given")
	}
	if c.NoColor {
		color.NoColor = true
	}
	var (
		results = parseAll(set.Args())
		err     error
	)
	switch c.Format {
	case formatText, "":
		err = printText(os.Stdout, results)
	case formatYaml:
		err = printYaml(os.Stdout, results)
	default:
		return fmt.Errorf("%s: unsupported output format", c.Format)
	}
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			return errFail
		}
	}
	return nil
}

type parseResult struct {
	Input string
	Expr  lpath.Expr
	Err   error
}

func parseAll(list []string) []parseResult {
	var results []parseResult
	for _, str := range list {
		expr, err := lpath.ParseString(str)
		results = append(results, parseResult{
			Input: str,
			Expr:  expr,
			Err:   err,
		})
	}
	return results
}

var (
	literalColor = color.New(color.FgGreen)
	patternColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed)
)

func printText(w io.Writer, results []parseResult) error {
	for _, r := range results {
		if r.Err != nil {
			printError(w, r.Input, r.Err)
			continue
		}
		fmt.Fprintln(w, r.Input)
		fmt.Fprintf(w, "  absolute: %t", r.Expr.Absolute)
		fmt.Fprintln(w)
		for i, s := range r.Expr.Segments {
			if s.Pattern {
				fmt.Fprintf(w, "  [%d] %s %s", i, "pattern", patternColor.Sprint(s.Content))
			} else {
				fmt.Fprintf(w, "  [%d] %s %s", i, "literal", literalColor.Sprint(s.Content))
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func printError(w io.Writer, input string, err error) {
	var serr lpath.SyntaxError
	if !errors.As(err, &serr) {
		fmt.Fprintln(w, errorColor.Sprint(err))
		return
	}
	line := input
	if lines := strings.Split(input, "\n"); serr.Line-1 < len(lines) {
		line = lines[serr.Line-1]
	}
	fmt.Fprintln(w, line)
	fmt.Fprint(w, strings.Repeat(" ", serr.Column-1))
	fmt.Fprintln(w, errorColor.Sprint("^"))
	fmt.Fprintln(w, errorColor.Sprint(serr.Error()))
}

type segmentDoc struct {
	Content string `yaml:"content"`
	Pattern bool   `yaml:"pattern"`
}

type errorDoc struct {
	Cause    string   `yaml:"cause"`
	Line     int      `yaml:"line"`
	Column   int      `yaml:"column"`
	Offset   int      `yaml:"offset"`
	Expected []string `yaml:"expected,omitempty"`
}

type exprDoc struct {
	Expr     string       `yaml:"expr"`
	Absolute bool         `yaml:"absolute"`
	Segments []segmentDoc `yaml:"segments,omitempty"`
	Error    *errorDoc    `yaml:"error,omitempty"`
}

func printYaml(w io.Writer, results []parseResult) error {
	var docs []exprDoc
	for _, r := range results {
		doc := exprDoc{
			Expr:     r.Input,
			Absolute: r.Expr.Absolute,
		}
		for _, s := range r.Expr.Segments {
			doc.Segments = append(doc.Segments, segmentDoc{
				Content: s.Content,
				Pattern: s.Pattern,
			})
		}
		var serr lpath.SyntaxError
		if errors.As(r.Err, &serr) {
			doc.Error = &errorDoc{
				Cause:    serr.Cause,
				Line:     serr.Line,
				Column:   serr.Column,
				Offset:   serr.Offset,
				Expected: serr.Expected,
			}
		}
		docs = append(docs, doc)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return err
	}
	return enc.Close()
}
