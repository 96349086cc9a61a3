package timecalc_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tiliavir/trivial-trip-planner/internal/timecalc"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{570, "09:30"},
		{1439, "23:59"},
		{1440, "00:00"},
		{1530, "01:30"},
		{-30, "23:30"},
	}
	for _, tt := range tests {
		got := timecalc.FormatClock(tt.minutes)
		if got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"9:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"25:30", 0, true},
		{"0930", 0, true},
		{"09:3", 0, true},
		{"09:60", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseClock(tt.input)
		if tt.wantErr {
			if !errors.Is(err, timecalc.ErrInvalidClock) {
				t.Errorf("ParseClock(%q) error = %v, want ErrInvalidClock", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestEpochDateRoundTrip(t *testing.T) {
	ms, err := timecalc.ParseEpochDate("2026-03-01", nil)
	if err != nil {
		t.Fatalf("ParseEpochDate: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if ms != want {
		t.Errorf("ParseEpochDate = %d, want %d", ms, want)
	}
	if got := timecalc.FormatEpochDate(ms, nil); got != "2026-03-01" {
		t.Errorf("FormatEpochDate = %q, want %q", got, "2026-03-01")
	}
}

func TestEpochDateInLocation(t *testing.T) {
	loc := time.FixedZone("NZDT", 13*3600)
	ms, err := timecalc.ParseEpochDate("2026-03-01", loc)
	if err != nil {
		t.Fatalf("ParseEpochDate: %v", err)
	}
	// Midnight in +13:00 is still the previous day in UTC.
	if got := timecalc.FormatEpochDate(ms, nil); got != "2026-02-28" {
		t.Errorf("FormatEpochDate UTC = %q, want %q", got, "2026-02-28")
	}
	if got := timecalc.FormatEpochDate(ms, loc); got != "2026-03-01" {
		t.Errorf("FormatEpochDate loc = %q, want %q", got, "2026-03-01")
	}
}

func TestParseEpochDateInvalid(t *testing.T) {
	for _, in := range []string{"", "01/03/2026", "2026-13-01"} {
		if _, err := timecalc.ParseEpochDate(in, nil); !errors.Is(err, timecalc.ErrInvalidDate) {
			t.Errorf("ParseEpochDate(%q) error = %v, want ErrInvalidDate", in, err)
		}
	}
}

func TestDaysSpanned(t *testing.T) {
	tests := []struct {
		first, last string
		want        int
	}{
		{"2026-03-01", "2026-03-01", 1},
		{"2026-02-27", "2026-03-02", 4},
		{"2026-03-02", "2026-03-01", 0},
		{"", "2026-03-01", 0},
	}
	for _, tt := range tests {
		if got := timecalc.DaysSpanned(tt.first, tt.last); got != tt.want {
			t.Errorf("DaysSpanned(%q, %q) = %d, want %d", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	if got := timecalc.FormatDays(1); got != "1 day" {
		t.Errorf("FormatDays(1) = %q", got)
	}
	if got := timecalc.FormatDays(12); got != "12 days" {
		t.Errorf("FormatDays(12) = %q", got)
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := timecalc.LoadLocation("")
	if err != nil || loc != time.UTC {
		t.Errorf("LoadLocation(\"\") = %v, %v; want UTC", loc, err)
	}
	if _, err := timecalc.LoadLocation("Not/AZone"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
