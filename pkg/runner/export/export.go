// Package export provides the CLI runner that prints a committed value as an
// iCalendar event.
package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	ics "tableflip.dev/tempo/pkg/export"
	"tableflip.dev/tempo/pkg/picker"
)

// Export writes Value as a one event calendar.
type Export struct {
	Variant     picker.Variant
	Value       string
	Summary     string
	Description string
	// Zone pins timed events, e.g. "Europe/Berlin". Empty exports floating
	// times.
	Zone string
	Now  func() time.Time
	UID  string
	// Out defaults to color.Output.
	Out io.Writer
}

// Run renders the calendar text.
func (e *Export) Run() (string, error) {
	opts := ics.Options{
		Summary:     e.Summary,
		Description: e.Description,
		Now:         e.Now,
		UID:         e.UID,
	}
	if e.Zone != "" {
		loc, err := time.LoadLocation(e.Zone)
		if err != nil {
			return "", fmt.Errorf("export: zone %q: %w", e.Zone, err)
		}
		opts.Location = loc
	}
	return ics.Serialize(e.Variant, e.Value, opts)
}

func (e *Export) Do(_ context.Context) error {
	out := e.Out
	if out == nil {
		out = color.Output
	}
	text, err := e.Run()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, text)
	return err
}
