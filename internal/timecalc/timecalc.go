package timecalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the display layout for calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the display layout for times of day (24-hour).
	ClockLayout = "15:04"

	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidDate is returned when a display date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidClock is returned when a display time is not HH:mm.
	ErrInvalidClock = errors.New("invalid time of day")
)

// FormatEpochDate formats an epoch-millisecond instant as YYYY-MM-DD in loc.
// A nil loc means UTC.
func FormatEpochDate(ms int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc).Format(DateLayout)
}

// ParseEpochDate parses a YYYY-MM-DD date and returns the epoch milliseconds
// of its midnight in loc. A nil loc means UTC.
func ParseEpochDate(s string, loc *time.Location) (int64, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return 0, fmt.Errorf("%w %q: want YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t.UnixMilli(), nil
}

// FormatClock formats minutes since midnight as HH:mm. Values of a day or
// more wrap around, negative values wrap backwards from midnight.
func FormatClock(minutes int) string {
	m := minutes % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseClock parses a 24-hour "HH:mm" (or "H:mm") time of day into minutes
// since midnight.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w %q: want HH:mm", ErrInvalidClock, s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w %q: bad hours", ErrInvalidClock, s)
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 || len(m) != 2 {
		return 0, fmt.Errorf("%w %q: bad minutes", ErrInvalidClock, s)
	}
	return hours*60 + mins, nil
}

// DaysSpanned returns the number of calendar days from the first to the last
// YYYY-MM-DD date, inclusive. It returns 0 if either date does not parse or
// last is before first.
func DaysSpanned(first, last string) int {
	a, err := time.Parse(DateLayout, first)
	if err != nil {
		return 0
	}
	b, err := time.Parse(DateLayout, last)
	if err != nil {
		return 0
	}
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a).Hours()/24) + 1
}

// FormatDays formats a day count like "1 day" or "12 days".
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// LoadLocation resolves an IANA timezone name. An empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}
