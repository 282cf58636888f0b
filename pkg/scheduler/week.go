package scheduler

import (
	"time"

	"github.com/teambition/rrule-go"
)

// WeekStart returns midnight on the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// BuildWeekDates returns the seven dates, Monday first, of the week containing anchor.
func BuildWeekDates(anchor time.Time) []time.Time {
	start := WeekStart(anchor)
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   7,
		Dtstart: start,
	})
	if err != nil {
		dates := make([]time.Time, 7)
		for i := range dates {
			dates[i] = start.AddDate(0, 0, i)
		}
		return dates
	}
	return r.All()
}

// ParseWeekStart parses a YYYY-MM-DD date (or RFC3339 timestamp) and returns its
// week's Monday. An empty string means the current week.
func ParseWeekStart(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return WeekStart(now), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, &ValidationError{Field: "week_start", Message: "expected YYYY-MM-DD", Err: err}
		}
	}
	return WeekStart(t), nil
}
