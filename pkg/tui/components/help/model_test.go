package help

import (
	"strings"
	"testing"

	"tableflip.dev/tempo/pkg/tui/theme"
)

var sections = []Section{
	{Title: "Field", Bindings: []Binding{{Keys: "enter", Action: "commit"}, {Keys: "f4", Action: "open"}}},
	{Title: "Panel", Bindings: []Binding{{Keys: "+/-", Action: "step"}}},
}

func TestContentAlignsKeys(t *testing.T) {
	m := New(sections, theme.Plain().Panel, 40, 10)
	lines := strings.Split(m.Content(), "\n")
	want := []string{
		"Field",
		"  enter  commit",
		"  f4     open",
		"",
		"Panel",
		"  +/-    step",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("content =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestViewKeepsMinimumSize(t *testing.T) {
	m := New(sections, theme.Plain().Panel, 10, 2)
	view := m.View()
	if got := len(strings.Split(view, "\n")); got != 8 {
		t.Fatalf("want 8 rows, got %d:\n%s", got, view)
	}
	if !strings.Contains(view, "enter") {
		t.Fatalf("bindings missing:\n%s", view)
	}
}
