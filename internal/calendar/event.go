package calendar

import (
	"strings"
	"time"
)

// CalendarEvent is one bookable item placed on the calendar grid. Date may be
// a time.Time or a date string; anything unparseable keeps the event out of
// every bucket. Time is only used for same-day ordering and display.
type CalendarEvent struct {
	ID       string                 `json:"id"`
	Date     interface{}            `json:"date"`
	Time     string                 `json:"time,omitempty"`
	Title    string                 `json:"title"`
	Category string                 `json:"category,omitempty"`
	Status   string                 `json:"status,omitempty"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// dateLayouts are tried in order for strings that are not plain dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeDate resolves a dynamic date value to a calendar date. Plain
// YYYY-MM-DD strings are parsed as local-time components so a date never
// shifts across a day boundary the way a UTC round-trip can. The second
// return is false when the value cannot be resolved.
func NormalizeDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		// Mongo and API decoding hand back UTC; the day key must come from
		// local calendar fields.
		return d.In(time.Local), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return d.In(time.Local), true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		if isPlainDate(s) {
			t, err := time.ParseInLocation("2006-01-02", s, time.Local)
			if err != nil {
				return time.Time{}, false
			}
			return t, true
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.In(time.Local), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// isPlainDate reports whether s looks like YYYY-MM-DD.
func isPlainDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// DayKey returns the canonical zero-padded YYYY-MM-DD bucket key for t,
// derived from its calendar fields. Bucketing and selection lookup must both
// go through this function so keys always match.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// EventDayKey resolves an event's bucket key. The second return is false for
// events whose date cannot be normalized.
func EventDayKey(e CalendarEvent) (string, bool) {
	t, ok := NormalizeDate(e.Date)
	if !ok {
		return "", false
	}
	return DayKey(t), true
}
