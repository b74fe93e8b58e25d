package temporal

import (
	"testing"
	"time"
)

func TestParseDateFreeformLocaleOrder(t *testing.T) {
	cases := []struct {
		raw, locale, want string
	}{
		{"03/05/2026", "en-US", "2026-03-05"},
		{"03/05/2026", "en-GB", "2026-05-03"},
		{"03/05/2026", "de-DE", "2026-05-03"},
		{"03/05/2026", "en", "2026-03-05"},
		{"3.5.26", "en-US", "2026-03-05"},
		{"3-5-99", "en_US", "1999-03-05"},
		{"05  03   2026", "fr-FR", "2026-03-05"},
		{"2026/3/5", "en-GB", "2026-03-05"},
		{"2026-03-05", "de-DE", "2026-03-05"},
		{"  2026-12-31 ", "en-US", "2026-12-31"},
	}
	for _, tc := range cases {
		got, ok := ParseDateFreeform(tc.raw, tc.locale, NewCache())
		if !ok {
			t.Fatalf("ParseDateFreeform(%q, %q) rejected", tc.raw, tc.locale)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseDateFreeform(%q, %q) = %s, want %s", tc.raw, tc.locale, got, tc.want)
		}
	}
}

func TestParseDateFreeformRejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"13/01/2026",  // month 13 in en-US
		"02/30/2026",  // Feb 30
		"00/10/2026",  // month 0
		"01/32/2026",  // day 32
		"1/2",         // two parts
		"1/2/3/4",     // four parts
		"ab/cd/2026",  // letters
		"01/02/999",   // three digit year
		"2026-02-29",  // not a leap year
		"0999-01-01",  // year below 1000
		"next tuesday", // words
	} {
		if d, ok := ParseDateFreeform(raw, "en-US", NewCache()); ok {
			t.Fatalf("ParseDateFreeform(%q) = %s, want rejection", raw, d)
		}
	}
}

func TestParseDateFreeformMonthNames(t *testing.T) {
	cases := []struct {
		raw, locale, want string
	}{
		{"5 March 2026", "en-GB", "2026-03-05"},
		{"March 5, 2026", "en-US", "2026-03-05"},
		{"Mar 5 2026", "en-US", "2026-03-05"},
		{"5th of May 2026", "en-GB", "2026-05-05"},
		{"sept 9 2026", "en-US", "2026-09-09"},
		{"Febuary 3 2026", "en-US", "2026-02-03"},
		{"5. März 2026", "de-DE", "2026-03-05"},
		{"5 de março de 2026", "pt-BR", "2026-03-05"},
		{"2026 March 5", "en-US", "2026-03-05"},
		{"12 Dec 26", "en-GB", "2026-12-12"},
	}
	for _, tc := range cases {
		got, ok := ParseDateFreeform(tc.raw, tc.locale, NewCache())
		if !ok {
			t.Fatalf("ParseDateFreeform(%q, %q) rejected", tc.raw, tc.locale)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseDateFreeform(%q, %q) = %s, want %s", tc.raw, tc.locale, got, tc.want)
		}
	}
}

func TestParseDateFreeformAmbiguousMonthPrefix(t *testing.T) {
	// "ju" is too short to match a prefix; "jun" and "jul" are exact short names.
	if _, ok := ParseDateFreeform("5 ju 2026", "en-US", NewCache()); ok {
		t.Fatalf("expected ambiguous month prefix to be rejected")
	}
	got, ok := ParseDateFreeform("5 jul 2026", "en-US", NewCache())
	if !ok || got.Month != time.July {
		t.Fatalf("expected July, got %v ok=%v", got, ok)
	}
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		raw          string
		allowSeconds bool
		want         string
	}{
		{"9:30", false, "09:30"},
		{"09.30", false, "09:30"},
		{"9h30", false, "09:30"},
		{"9h30m", false, "09:30"},
		{"930", false, "09:30"},
		{"2359", false, "23:59"},
		{"9", false, "09:00"},
		{"9am", false, "09:00"},
		{"9:30 PM", false, "21:30"},
		{"12 a.m.", false, "00:00"},
		{"12pm", false, "12:00"},
		{"12:15 p", false, "12:15"},
		{"21:15:05", true, "21:15:05"},
		{"211505", true, "21:15:05"},
		{"1:02:03 pm", true, "13:02:03"},
	}
	for _, tc := range cases {
		got, ok := ParseTime(tc.raw, tc.allowSeconds)
		if !ok {
			t.Fatalf("ParseTime(%q) rejected", tc.raw)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseTime(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestParseTimeRejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"24:00",
		"9:60",
		"13pm",   // meridiem limits hours to 1..12
		"0am",    // and excludes zero
		"9:30:15", // seconds without allowSeconds
		"noon",
		"9:3:0:1",
		"12345678",
	} {
		if got, ok := ParseTime(raw, false); ok {
			t.Fatalf("ParseTime(%q) = %s, want rejection", raw, got)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		raw, locale, want string
	}{
		{"2026-03-05T09:30", "en-US", "2026-03-05T09:30"},
		{"2026-03-05 9:30pm", "en-US", "2026-03-05T21:30"},
		{"03/05/2026 14:00", "en-GB", "2026-05-03T14:00"},
		{"March 5, 2026 9:30 pm", "en-US", "2026-03-05T21:30"},
		{"03/05/2026", "en-US", "2026-03-05T00:00"},
	}
	for _, tc := range cases {
		got, ok := ParseDateTime(tc.raw, tc.locale, false, NewCache())
		if !ok {
			t.Fatalf("ParseDateTime(%q) rejected", tc.raw)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseDateTime(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
	if _, ok := ParseDateTime("2026-03-05T25:00", "en-US", false, NewCache()); ok {
		t.Fatalf("expected invalid time part to reject the datetime")
	}
}

func TestParseISODateTime(t *testing.T) {
	if _, ok := ParseISODateTime("2026-03-05 09:30"); ok {
		t.Fatalf("expected space separated input to be rejected by the strict parser")
	}
	dt, ok := ParseISODateTime("2026-03-05T09:30:15")
	if !ok || !dt.Time.Seconds || dt.Time.Second != 15 {
		t.Fatalf("unexpected parse result %v ok=%v", dt, ok)
	}
}
