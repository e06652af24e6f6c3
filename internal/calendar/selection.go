package calendar

import "time"

// Selection holds zero-or-one focused day. Selecting a new day fully
// replaces the old one; there is no accumulation. The zero value means
// nothing is selected.
type Selection struct {
	dayKey string
}

// NewSelection creates a selection focused on the given date, falling back
// to today when the value is nil or unparseable.
func NewSelection(initial interface{}) Selection {
	if t, ok := NormalizeDate(initial); ok {
		return Selection{dayKey: DayKey(t)}
	}
	return Selection{dayKey: DayKey(time.Now())}
}

// Select returns a selection focused on the given date. An unparseable date
// leaves the selection unchanged.
func (s Selection) Select(date interface{}) Selection {
	t, ok := NormalizeDate(date)
	if !ok {
		return s
	}
	return Selection{dayKey: DayKey(t)}
}

// Clear returns an empty selection.
func (s Selection) Clear() Selection {
	return Selection{}
}

// DayKey returns the selected day-key; ok is false when nothing is selected.
func (s Selection) DayKey() (string, bool) {
	return s.dayKey, s.dayKey != ""
}

// EventsIn returns the selected day's bucket, or an empty sequence when
// nothing is selected or the day holds no events. The lookup uses the same
// day-key derivation as bucketing, so a selected date with events always
// round-trips to exactly those events.
func (s Selection) EventsIn(buckets Buckets) []CalendarEvent {
	if s.dayKey == "" {
		return nil
	}
	return buckets.Day(s.dayKey)
}
