package eventviewer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tableflip.dev/tempo/pkg/tui/theme"
)

var at = time.Date(2026, time.March, 5, 9, 30, 0, 0, time.UTC)

func TestAppendKeepsNewestFirstWithinLimit(t *testing.T) {
	m := NewModel(2, theme.Plain().Events)
	for _, s := range []string{"one", "two", "three"} {
		m.Append(Entry{Timestamp: at, Source: "due", Summary: s})
	}
	require.Equal(t, 2, m.Len())
	require.Equal(t, "three", m.Visible()[0].Summary)
	require.Equal(t, "two", m.Visible()[1].Summary)
}

func TestFilterBySource(t *testing.T) {
	m := NewModel(10, theme.Plain().Events)
	m.SetSize(60, 6)
	m.Append(Entry{Timestamp: at, Source: "check-in", Summary: "change"})
	m.Append(Entry{Timestamp: at, Summary: "key"})

	m.Filter("check-in")
	require.Len(t, m.Visible(), 1)
	view := m.View()
	require.Contains(t, view, "Events · check-in")
	require.Contains(t, view, "[check-in] change")
	require.NotContains(t, view, "[tea]")

	m.Filter("")
	require.Len(t, m.Visible(), 2)
}

func TestLongDetailIsCut(t *testing.T) {
	m := NewModel(10, theme.Plain().Events)
	m.SetSize(40, 4)
	m.Append(Entry{Timestamp: at, Source: "due", Summary: "invalid", Detail: strings.Repeat("x", 80), Level: LevelWarn})
	for _, line := range strings.Split(m.View(), "\n") {
		require.LessOrEqual(t, len([]rune(line)), 40, "line %q", line)
	}
	require.Contains(t, m.View(), "…")
}
