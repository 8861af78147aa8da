package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/lutaml/lutaml-path/lpath"
	"github.com/mattn/go-isatty"
	"github.com/midbel/cli"
)

var exploreCmd = cli.Command{
	Name:    "explore",
	Summary: "interactively parse path expressions",
	Handler: &ExploreCmd{},
}

type ExploreCmd struct {
	Initial string
}

func (c *ExploreCmd) Run(args []string) error {
	set := flag.NewFlagSet("explore", flag.ContinueOnError)
	set.StringVar(&c.Initial, "e", "", "initial path expression")
	if err := set.Parse(args); err != nil {
		return err
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("explore requires an interactive terminal")
	}
	_, err := tea.NewProgram(newExploreModel(c.Initial)).Run()
	return err
}

var (
	literalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	patternStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

type exploreModel struct {
	input   textinput.Model
	history []string
}

func newExploreModel(initial string) exploreModel {
	in := textinput.New()
	in.Prompt = "path> "
	in.Placeholder = "::root::item*::name"
	in.SetValue(initial)
	in.Focus()
	return exploreModel{
		input: in,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if v := m.input.Value(); v != "" {
				m.history = append(m.history, v)
				m.input.Reset()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m exploreModel) View() tea.View {
	var str strings.Builder
	for _, h := range m.history {
		str.WriteString(mutedStyle.Render(h))
		str.WriteString("\n")
		str.WriteString(renderExpr(h))
		str.WriteString("\n")
	}
	str.WriteString(m.input.View())
	str.WriteString("\n")
	if v := m.input.Value(); v != "" {
		str.WriteString(renderExpr(v))
		str.WriteString("\n")
	}
	str.WriteString(mutedStyle.Render("enter: keep - esc: quit"))
	str.WriteString("\n")
	return tea.NewView(str.String())
}

func renderExpr(input string) string {
	expr, err := lpath.ParseString(input)
	if err != nil {
		var serr lpath.SyntaxError
		if !errors.As(err, &serr) {
			return errorStyle.Render(err.Error())
		}
		var str strings.Builder
		str.WriteString("  ")
		str.WriteString(strings.Repeat(" ", serr.Column-1))
		str.WriteString(errorStyle.Render("^ " + serr.Cause))
		return str.String()
	}
	parts := make([]string, 0, expr.Depth())
	for _, s := range expr.Segments {
		if s.Pattern {
			parts = append(parts, patternStyle.Render(s.Content))
		} else {
			parts = append(parts, literalStyle.Render(s.Content))
		}
	}
	kind := "relative"
	if expr.Absolute {
		kind = "absolute"
	}
	return fmt.Sprintf("  %s %s", mutedStyle.Render(kind), strings.Join(parts, mutedStyle.Render(" / ")))
}
