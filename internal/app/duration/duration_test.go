package duration_test

import (
	"errors"
	"testing"

	"github.com/pacely/pacely/internal/app/duration"
	"github.com/pacely/pacely/internal/domain"
)

// ─── Parse ──────────────────────────────────────────────────────────────────

func TestParse_RecognizedShapes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		// Combined hours+minutes
		{"1h30m", 90},
		{"1h30", 90},
		{"2h0m", 120},
		{"1H30M", 90},
		{" 1h 30m ", 90},

		// Hours only
		{"2h", 120},
		{"1.5h", 90},
		{"2 hours", 120},
		{"1 hour", 60},
		{"3hr", 180},
		{"3hrs", 180},
		{"0.5h", 30},

		// Minutes only
		{"45m", 45},
		{"45 minutes", 45},
		{"1 minute", 1},
		{"45min", 45},
		{"45mins", 45},
		{"45", 45},
		{"1440", 1440},
	}

	for _, tc := range cases {
		got, err := duration.Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParse_DecimalHoursRoundHalfUp(t *testing.T) {
	// 1.33h = 79.8 minutes — must round to 80, not truncate to 79.
	got, err := duration.Parse("1.33h")
	if err != nil {
		t.Fatalf("Parse(1.33h) error: %v", err)
	}
	if got != 80 {
		t.Errorf("Parse(1.33h) = %d, want 80", got)
	}

	// 0.008h = 0.48 minutes — rounds down to 0, which is out of range.
	if _, err := duration.Parse("0.008h"); !errors.Is(err, domain.ErrDurationOutOfRange) {
		t.Errorf("Parse(0.008h) error = %v, want ErrDurationOutOfRange", err)
	}
}

func TestParse_Equivalence(t *testing.T) {
	// "1h30m", "1.5h", "90m", and "90" all mean ninety minutes.
	for _, input := range []string{"1h30m", "1.5h", "90m", "90"} {
		got, err := duration.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}
		if got != 90 {
			t.Errorf("Parse(%q) = %d, want 90", input, got)
		}
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	cases := []string{
		"", "  ", "h", "m", "hm", "1h30m45", "abc",
		"1.5", "1.5m", "-45m", "1h-30m", "2hh", "minutes",
	}
	for _, input := range cases {
		_, err := duration.Parse(input)
		if !errors.Is(err, domain.ErrInvalidDurationFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidDurationFormat", input, err)
		}
	}
}

func TestParse_OutOfRange(t *testing.T) {
	cases := []string{"0", "0m", "0h0m", "1441", "25h", "24h1m", "1441m"}
	for _, input := range cases {
		_, err := duration.Parse(input)
		if !errors.Is(err, domain.ErrDurationOutOfRange) {
			t.Errorf("Parse(%q) error = %v, want ErrDurationOutOfRange", input, err)
		}
	}
}

// ─── Format ─────────────────────────────────────────────────────────────────

func TestFormat(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{1, "1m"},
		{45, "45m"},
		{59, "59m"},
		{60, "1h"},
		{90, "1h30m"},
		{120, "2h"},
		{121, "2h1m"},
		{1440, "24h"},
	}
	for _, tc := range cases {
		if got := duration.Format(tc.minutes); got != tc.want {
			t.Errorf("Format(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

// ─── Round Trip ─────────────────────────────────────────────────────────────

func TestRoundTrip_AllValidMinutes(t *testing.T) {
	// Parse(Format(m)) == m for every valid duration.
	for m := 1; m <= duration.MaxMinutes; m++ {
		s := duration.Format(m)
		got, err := duration.Parse(s)
		if err != nil {
			t.Fatalf("Parse(Format(%d)) = Parse(%q) error: %v", m, s, err)
		}
		if got != m {
			t.Fatalf("Parse(Format(%d)) = Parse(%q) = %d", m, s, got)
		}
	}
}
