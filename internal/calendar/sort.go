package calendar

import (
	"sort"
	"strconv"
	"strings"
)

// SortEventsByTime returns a copy of events ordered ascending by their clock
// time. Events with a missing or unparseable time sort last, keeping their
// relative order. This is a display concern only; bucketing never reorders.
func SortEventsByTime(events []CalendarEvent) []CalendarEvent {
	sorted := make([]CalendarEvent, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		mi, oki := parseClock(sorted[i].Time)
		mj, okj := parseClock(sorted[j].Time)
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return mi < mj
	})
	return sorted
}

// parseClock resolves a clock-time string to minutes since midnight. Accepts
// 24-hour "15:04" (with optional seconds) and 12-hour "3:04 PM" forms.
func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	meridiem := ""
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		meridiem = upper[len(upper)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if minute < 0 || minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, false
		}
	}

	return hour*60 + minute, true
}
