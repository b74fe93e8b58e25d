package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestComposeAtPlacesPanel(t *testing.T) {
	bg := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc", "dddddddddd"}, "\n")
	got := ComposeAt(bg, 10, 4, "XX\nYY", 3, 1)
	want := []string{"aaaaaaaaaa", "bbbXXbbbbb", "cccYYccccc", "dddddddddd"}
	if got != strings.Join(want, "\n") {
		t.Fatalf("unexpected composition:\n%s", got)
	}
}

func TestComposeAtClipsToBackground(t *testing.T) {
	bg := strings.Join([]string{"aaaaa", "bbbbb"}, "\n")
	got := strings.Split(ComposeAt(bg, 5, 2, "XXX\nYYY\nZZZ", 4, 1), "\n")
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got))
	}
	if got[0] != "aaaaa" || got[1] != "bbXXX" {
		t.Fatalf("expected the panel to shift left and clip below, got %q", got)
	}
}

func TestComposeBottomSheet(t *testing.T) {
	bg := strings.Join([]string{"aaaa", "bbbb", "cccc"}, "\n")
	got := strings.Split(Compose(bg, 4, 3, "SS", Placement{Vertical: lipgloss.Bottom, Width: 4}), "\n")
	if got[2] != "SS  " || got[0] != "aaaa" {
		t.Fatalf("expected a full width sheet on the last row, got %q", got)
	}
}

func TestComposeEmptyForeground(t *testing.T) {
	got := ComposeAt("ab", 3, 2, "", 0, 0)
	if got != "ab \n   " {
		t.Fatalf("expected padded background, got %q", got)
	}
}

func TestComposeKeepsStyledBackground(t *testing.T) {
	red := "\x1b[31m"
	reset := "\x1b[m"
	bg := red + "abcdef" + reset
	got := ComposeAt(bg, 6, 1, "XY", 2, 0)
	if ansi.Strip(got) != "abXYef" {
		t.Fatalf("unexpected cells %q", ansi.Strip(got))
	}
	if ansi.StringWidth(got) != 6 {
		t.Fatalf("escape sequences must not count as cells, got width %d", ansi.StringWidth(got))
	}
}

func TestComposeCentersWithMargins(t *testing.T) {
	bg := strings.Repeat("........\n", 3) + "........"
	got := strings.Split(Compose(bg, 8, 4, "XX", Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}), "\n")
	if got[1] != "...XX..." {
		t.Fatalf("expected centered box, got %q", got)
	}
	got = strings.Split(Compose(bg, 8, 4, "XX", Placement{Horizontal: lipgloss.Right, Vertical: lipgloss.Top, MarginX: 1, MarginY: 1}), "\n")
	if got[1] != ".....XX." {
		t.Fatalf("expected right aligned box inside the margin, got %q", got)
	}
}
