package parse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/span"
)

func TestParseCommitsTypedText(t *testing.T) {
	tests := map[string]struct {
		variant picker.Variant
		locale  string
		text    string
		want    string
	}{
		"month name":  {variant: picker.VariantDate, text: "March 5, 2026", want: "2026-03-05"},
		"day first":   {variant: picker.VariantDate, locale: "en-GB", text: "05/03/2026", want: "2026-03-05"},
		"month first": {variant: picker.VariantDate, text: "03/05/2026", want: "2026-03-05"},
		"meridiem":    {variant: picker.VariantTime, text: "9:30pm", want: "21:30"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := picker.DefaultConfig(tc.variant)
			if tc.locale != "" {
				cfg.Locale = tc.locale
			}
			p := Parse{Variant: tc.variant, Config: cfg, Text: tc.text}
			res, err := p.Run()
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if res.Value != tc.want {
				t.Fatalf("value = %q, want %q", res.Value, tc.want)
			}
			if res.Reason != "" {
				t.Fatalf("unexpected rejection %q", res.Reason)
			}
		})
	}
}

func TestParseReportsRejection(t *testing.T) {
	var buf bytes.Buffer
	p := Parse{
		Variant: picker.VariantDate,
		Config:  picker.DefaultConfig(picker.VariantDate),
		Text:    "31/31/2026",
		Printer: &printers.PrettyPrint{Out: &buf, Format: printers.FormatJSON},
	}
	err := p.Do(context.Background())

	var inv *span.InvalidError
	if !errors.As(err, &inv) || inv.Reason != span.ReasonParse {
		t.Fatalf("want a parse rejection, got %v", err)
	}
	var res Result
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("decode output %q: %v", buf.String(), err)
	}
	if res.Value != "" || res.Error == "" {
		t.Fatalf("unexpected result %+v", res)
	}
}
