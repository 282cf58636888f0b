package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts "HH:MM" to minutes since midnight. "24:00" is accepted
// as an end-of-day time.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(m) != 2 || len(h) == 0 || len(h) > 2 || !digits(h) || !digits(m) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if hours < 0 || mins < 0 || mins > 59 || hours > 24 || (hours == 24 && mins != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hours*60 + mins, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatClock12h renders "16:00" as "04:00 PM". Unparseable input is returned unchanged.
func FormatClock12h(s string) string {
	mins, err := ParseClock(s)
	if err != nil {
		return s
	}
	h, m := (mins/60)%24, mins%60
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, m, ampm)
}

// window is a same-day [start,end) interval in minutes.
type window struct {
	start, end int
}

func parseWindow(start, end string) (window, error) {
	s, err := ParseClock(start)
	if err != nil {
		return window{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return window{}, err
	}
	return window{start: s, end: e}, nil
}

// hours is the window length; negative when end precedes start.
func (w window) hours() float64 {
	return float64(w.end-w.start) / 60
}

// overlaps treats touching endpoints as free.
func (w window) overlaps(o window) bool {
	return max(w.start, o.start) < min(w.end, o.end)
}

// DurationHours calculates the duration between two clock times in hours
func DurationHours(start, end string) (float64, error) {
	w, err := parseWindow(start, end)
	if err != nil {
		return 0, err
	}
	return w.hours(), nil
}

// Overlap checks if two clock ranges on the same day overlap
func Overlap(aStart, aEnd, bStart, bEnd string) (bool, error) {
	a, err := parseWindow(aStart, aEnd)
	if err != nil {
		return false, err
	}
	b, err := parseWindow(bStart, bEnd)
	if err != nil {
		return false, err
	}
	return a.overlaps(b), nil
}
