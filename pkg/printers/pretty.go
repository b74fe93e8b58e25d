// Package printers renders CLI results as colored tables, JSON or YAML.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"
)

// Format selects how results are printed.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an --output value. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q, want table, json or yaml", s)
}

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out    io.Writer
	Format Format
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Fields prints label/value pairs, or data when the format is structured.
func (pp *PrettyPrint) Fields(data any, rows [][2]string) error {
	if done, err := pp.encode(data); done {
		return err
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		tbl.AddRow(bold.Sprint(r[0]), r[1])
	}
	tbl.RightAlign(0)
	_, err := fmt.Fprintln(pp.out(), tbl)
	return err
}

// Table prints rows under a bold header, or data when the format is
// structured.
func (pp *PrettyPrint) Table(data any, header []string, rows [][]string) error {
	if done, err := pp.encode(data); done {
		return err
	}
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return nil
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = bold.Sprint(h)
	}
	tbl.AddRow(cells...)
	for _, r := range rows {
		cells := make([]any, len(r))
		for i, c := range r {
			cells[i] = c
		}
		tbl.AddRow(cells...)
	}
	_, err := fmt.Fprintln(pp.out(), tbl)
	return err
}

// Invalid styles a rejection message.
func Invalid(msg string) string {
	return color.New(color.FgRed).Sprint(msg)
}

// Faint styles secondary text.
func Faint(msg string) string {
	return color.New(color.Faint).Sprint(msg)
}

func (pp *PrettyPrint) encode(data any) (bool, error) {
	switch pp.Format {
	case FormatJSON:
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprintln(pp.out(), string(b))
		return true, err
	case FormatYAML:
		enc := yaml.NewEncoder(pp.out())
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}
