package temporal

import "testing"

func TestCompareISO(t *testing.T) {
	if CompareISO("2026-02-18", "2026-02-20") >= 0 {
		t.Fatalf("expected earlier date to sort first")
	}
	if CompareISO("2026-02-20T09:00", "2026-02-20T09:00") != 0 {
		t.Fatalf("expected equal datetimes to compare equal")
	}
}

func TestCompareTimeParsesBothSides(t *testing.T) {
	// String order would put "10:00" before "9:30".
	if got := CompareTime("9:30", "10:00"); got >= 0 {
		t.Fatalf("CompareTime(9:30, 10:00) = %d, want negative", got)
	}
	if got := CompareTime("9pm", "20:59"); got <= 0 {
		t.Fatalf("CompareTime(9pm, 20:59) = %d, want positive", got)
	}
}

// The fallback to raw string order when a side fails to parse is kept for
// compatibility. These cases pin that behaviour, including the ones where it
// disagrees with clock order.
func TestCompareFallsBackToStringOrder(t *testing.T) {
	if got := CompareTime("25:00", "9:00"); got >= 0 {
		t.Fatalf("CompareTime(25:00, 9:00) = %d, want string order (negative)", got)
	}
	if got := CompareTime("bogus", "bogus"); got != 0 {
		t.Fatalf("CompareTime(bogus, bogus) = %d, want 0", got)
	}
	if got := CompareDateTime("2026-03-05 10:00", "2026-03-05T09:00"); got >= 0 {
		t.Fatalf("CompareDateTime with a non canonical side = %d, want string order (negative)", got)
	}
	if got := CompareDateTime("2026-03-05T10:00", "2026-03-05T09:00:59"); got <= 0 {
		t.Fatalf("CompareDateTime(10:00, 09:00:59) = %d, want positive", got)
	}
}

func TestClampDate(t *testing.T) {
	d := MustDate(2026, 3, 5)
	cases := []struct {
		min, max string
		want     string
	}{
		{"", "", "2026-03-05"},
		{"2026-03-10", "", "2026-03-10"},
		{"", "2026-03-01", "2026-03-01"},
		{"2026-01-01", "2026-12-31", "2026-03-05"},
		{"garbage", "2026-03-01", "2026-03-01"},
		{"2026-03-10", "also-garbage", "2026-03-10"},
		// Inverted bounds: max is applied last.
		{"2026-04-01", "2026-02-01", "2026-02-01"},
	}
	for _, tc := range cases {
		if got := ClampDate(d, tc.min, tc.max); got.String() != tc.want {
			t.Fatalf("ClampDate(%s, %q, %q) = %s, want %s", d, tc.min, tc.max, got, tc.want)
		}
	}
	if got := ClampDate(Date{}, "2026-01-01", ""); !got.IsZero() {
		t.Fatalf("expected absent date to stay absent, got %s", got)
	}
}

func TestClampTime(t *testing.T) {
	if got := ClampTime(Clock(7, 0), "08:30", "17:00"); got.String() != "08:30" {
		t.Fatalf("unexpected %s", got)
	}
	if got := ClampTime(Clock(18, 0), "8:30am", "5pm"); got.String() != "17:00" {
		t.Fatalf("unexpected %s", got)
	}
	if got := ClampTime(Clock(12, 0), "nope", "nope"); got.String() != "12:00" {
		t.Fatalf("unexpected %s", got)
	}
}

func TestClampTimeKeepsValuePrecision(t *testing.T) {
	cases := []struct {
		v        Time
		min, max string
		want     string
	}{
		{Clock(8, 0), "09:00:30", "", "09:01"},
		{Clock(18, 0), "", "17:00:30", "17:00"},
		{ClockSeconds(8, 0, 0), "09:00:30", "", "09:00:30"},
		{ClockSeconds(18, 0, 0), "", "17:00:30", "17:00:30"},
		{Clock(8, 0), "23:59:30", "", "23:59:30"},
	}
	for _, tc := range cases {
		got := ClampTime(tc.v, tc.min, tc.max)
		if got.String() != tc.want {
			t.Fatalf("ClampTime(%s, %q, %q) = %s, want %s", tc.v, tc.min, tc.max, got, tc.want)
		}
		if lo, ok := ParseTime(tc.min, true); ok && got.Compare(lo) < 0 {
			t.Fatalf("ClampTime(%s, %q, %q) = %s is below min", tc.v, tc.min, tc.max, got)
		}
	}
}

func TestClampDateTimeKeepsValuePrecision(t *testing.T) {
	v := NewDateTime(MustDate(2026, 3, 5), Clock(8, 0))
	if got := ClampDateTime(v, "2026-03-05T09:00:30", ""); got.String() != "2026-03-05T09:01" {
		t.Fatalf("unexpected %s", got)
	}
	late := NewDateTime(MustDate(2026, 3, 5), Clock(18, 0))
	if got := ClampDateTime(late, "", "2026-03-05T17:00:30"); got.String() != "2026-03-05T17:00" {
		t.Fatalf("unexpected %s", got)
	}
	if got := ClampDateTime(v, "2026-03-05T23:59:30", ""); got.String() != "2026-03-06T00:00" {
		t.Fatalf("rounding past midnight should move to the next day, got %s", got)
	}
}

func TestClampDateTimeUsesCombinedTimestamp(t *testing.T) {
	v := NewDateTime(MustDate(2026, 3, 5), Clock(8, 0))
	// Same day as the min bound but earlier in the day.
	if got := ClampDateTime(v, "2026-03-05T09:15", ""); got.String() != "2026-03-05T09:15" {
		t.Fatalf("unexpected %s", got)
	}
	// Date-only max resolves to the end of that day.
	late := NewDateTime(MustDate(2026, 3, 9), Clock(10, 0))
	if got := ClampDateTime(late, "", "2026-03-08"); got.String() != "2026-03-08T23:59" {
		t.Fatalf("unexpected %s", got)
	}
	// Date-only min resolves to midnight.
	early := NewDateTime(MustDate(2026, 3, 1), Clock(10, 0))
	if got := ClampDateTime(early, "2026-03-02", ""); got.String() != "2026-03-02T00:00" {
		t.Fatalf("unexpected %s", got)
	}
}
