package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lutaml/lutaml-path/lpath"
	"github.com/midbel/cli"
)

var debugCmd = cli.Command{
	Name:    "debug",
	Summary: "trace the parsing of a path expression",
	Handler: &DebugCmd{},
}

type DebugCmd struct {
	Quiet bool
}

func (c *DebugCmd) Run(args []string) error {
	set := flag.NewFlagSet("debug", flag.ContinueOnError)
	set.BoolVar(&c.Quiet, "quiet", false, "don't trace parser rules")
	if err := set.Parse(args); err != nil {
		return err
	}
	var options []lpath.Option
	if !c.Quiet {
		options = append(options, lpath.WithTracer(lpath.TraceStderr()))
	}
	expr, err := lpath.NewParser(set.Arg(0), options...).Parse()
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, lpath.Debug(expr))
	return nil
}
