package telemetry

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"goa.design/clue/log"
)

func TestClueLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := log.Context(context.Background(), log.WithOutput(&buf), log.WithFormat(log.FormatJSON), log.WithDebug())
	l := NewClueLogger(ctx)

	l.Debug("commit", "picker", "due", "source", "enter", 42)
	l.Error("watch failed", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{`"msg":"commit"`, `"picker":"due"`, `"source":"enter"`, "boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Debug("x")
	l.Info("x", "k", "v")
	l.Error("x", nil)
}
