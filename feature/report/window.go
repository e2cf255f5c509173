package report

import (
	"fmt"
	"time"
)

// dateLayout is the CLI date format (DD.MM.YYYY).
const dateLayout = "02.01.2006"

// Window is a half-open unix-second interval [Start, End) covering one
// calendar day.
type Window struct {
	Start int64
	End   int64
}

// ParseDay parses a DD.MM.YYYY date in the local timezone.
func ParseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected DD.MM.YYYY, got %q", s)
	}
	return day, nil
}

// DayWindow computes the [midnight, next midnight) window of the given day.
// AddDate is used so the window stays aligned with calendar days across DST
// transitions.
func DayWindow(day time.Time) Window {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	return Window{Start: start.Unix(), End: end.Unix()}
}

// Contains reports whether ts falls inside the window.
func (w Window) Contains(ts int64) bool {
	return ts >= w.Start && ts < w.End
}

// dayOf truncates a unix-second timestamp to local midnight.
func dayOf(ts int64) time.Time {
	t := time.Unix(ts, 0)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
