// Package recent provides the CLI runner that lists and clears remembered
// picker values.
package recent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/timeutil"
)

// Recent lists the remembered values of ID, or of every picker when ID is
// empty.
type Recent struct {
	Recents store.Recents
	ID      picker.ComponentID
	// Since drops values remembered longer ago than this. Zero keeps all.
	Since   time.Duration
	Now     func() time.Time
	Printer *printers.PrettyPrint
}

func (r *Recent) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Entry is one remembered value.
type Entry struct {
	Picker picker.ComponentID `json:"picker" yaml:"picker"`
	Value  string             `json:"value" yaml:"value"`
	At     time.Time          `json:"at" yaml:"at"`
}

func (r *Recent) ids(ctx context.Context) []picker.ComponentID {
	if r.ID != "" {
		return []picker.ComponentID{r.ID}
	}
	return r.Recents.IDs(ctx)
}

// List returns the remembered values, grouped by picker.
func (r *Recent) List(ctx context.Context) ([]Entry, error) {
	if r.Recents == nil {
		return nil, errors.New("recent: no store")
	}
	var cutoff time.Time
	if r.Since > 0 {
		cutoff = r.now().Add(-r.Since)
	}
	var out []Entry
	for _, id := range r.ids(ctx) {
		list, err := r.Recents.List(id)
		if err != nil {
			return nil, fmt.Errorf("recent: list %s: %w", id, err)
		}
		for _, e := range list {
			if e.At.Before(cutoff) {
				continue
			}
			out = append(out, Entry{Picker: id, Value: e.Value, At: e.At})
		}
	}
	return out, nil
}

func (r *Recent) Do(ctx context.Context) error {
	if r.Printer == nil {
		return errors.New("recent: no printer")
	}
	entries, err := r.List(ctx)
	if err != nil {
		return err
	}
	now := r.now()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{string(e.Picker), e.Value, printers.Faint(timeutil.Ago(now, e.At))})
	}
	if r.Printer.Format == printers.FormatTable {
		title := "Recents"
		if r.Since > 0 {
			title += " (last " + timeutil.FormatWindow(r.Since) + ")"
		}
		r.Printer.TitleWithCount(title, len(entries), "value")
	}
	return r.Printer.Table(entries, []string{"Picker", "Value", "At"}, rows)
}

// Clear forgets the values of ID, or of every picker when ID is empty.
type Clear struct {
	Recents store.Recents
	ID      picker.ComponentID
	Printer *printers.PrettyPrint
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Recents == nil {
		return errors.New("recent: no store")
	}
	ids := []picker.ComponentID{c.ID}
	if c.ID == "" {
		ids = c.Recents.IDs(ctx)
	}
	for _, id := range ids {
		if err := c.Recents.Clear(id); err != nil {
			return fmt.Errorf("recent: clear %s: %w", id, err)
		}
	}
	if c.Printer == nil {
		return nil
	}
	cleared := make([]string, 0, len(ids))
	for _, id := range ids {
		cleared = append(cleared, string(id))
	}
	return c.Printer.Fields(map[string][]string{"cleared": cleared}, [][2]string{
		{"Cleared", fmt.Sprintf("%d pickers", len(ids))},
	})
}
