package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"phonepad/internal/charset"

	"github.com/mattn/go-runewidth"
)

type CharsetsCommand struct {
	wiring commandWiring
}

func NewCharsetsCommand(wiring commandWiring) *CharsetsCommand {
	return &CharsetsCommand{wiring: wiring}
}

func (c *CharsetsCommand) Run(args []string) error {
	fs := flag.NewFlagSet("charsets", flag.ContinueOnError)
	fs.SetOutput(c.wiring.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errors.New("charsets takes at most one charset id")
	}

	env, err := newCommandEnv(c.wiring)
	if err != nil {
		return err
	}
	if fs.NArg() == 1 {
		return printKeys(c.wiring.stdout, env.registry, fs.Arg(0))
	}
	return printCharsets(c.wiring.stdout, env.registry)
}

func printCharsets(out io.Writer, registry *charset.Registry) error {
	rows := [][]string{}
	for _, def := range registry.Definitions() {
		mapping, err := registry.Select(def.ID)
		if err != nil {
			return err
		}
		rows = append(rows, []string{def.ID, def.Label, string(mapping.Keys())})
	}
	return writeTable(out, []string{"ID", "LABEL", "KEYS"}, rows)
}

func printKeys(out io.Writer, registry *charset.Registry, id string) error {
	mapping, err := registry.Select(id)
	if err != nil {
		return err
	}
	rows := [][]string{}
	for _, key := range mapping.Keys() {
		chars, err := mapping.Candidates(key)
		if err != nil {
			return err
		}
		cells := make([]string, 0, len(chars))
		for _, r := range chars {
			cells = append(cells, string(r))
		}
		rows = append(rows, []string{string(key), strings.Join(cells, " ")})
	}
	return writeTable(out, []string{"KEY", "CHARACTERS"}, rows)
}

// writeTable aligns columns by display width; layouts may carry wide or
// multi-byte characters.
func writeTable(out io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = runewidth.StringWidth(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := append([][]string{header}, rows...)
	for _, row := range lines {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(row)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		if _, err := fmt.Fprintln(out, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
