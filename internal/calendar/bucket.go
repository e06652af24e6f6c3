package calendar

import "sort"

// DefaultStatus is assumed for events carrying no status while a status
// filter is active. When no filter is active such events pass through
// untouched.
const DefaultStatus = "pending"

// StatusFilter is the set of status labels allowed through bucketing. An
// empty (or nil) filter means unfiltered.
type StatusFilter map[string]struct{}

// NewStatusFilter builds a filter from raw labels, normalizing case and
// synonyms. Blank labels are ignored.
func NewStatusFilter(statuses ...string) StatusFilter {
	filter := make(StatusFilter, len(statuses))
	for _, s := range statuses {
		if normalized := NormalizeStatus(s); normalized != "" {
			filter[normalized] = struct{}{}
		}
	}
	return filter
}

// Active reports whether the filter restricts anything.
func (f StatusFilter) Active() bool {
	return len(f) > 0
}

// Allows reports whether an event with the given raw status passes the
// filter. An inactive filter allows everything; a missing status is treated
// as DefaultStatus.
func (f StatusFilter) Allows(status string) bool {
	if !f.Active() {
		return true
	}
	normalized := NormalizeStatus(status)
	if normalized == "" {
		normalized = DefaultStatus
	}
	_, ok := f[normalized]
	return ok
}

// Buckets maps a day-key to the ordered events falling on that day.
type Buckets map[string][]CalendarEvent

// Bucketize groups events by day-key, applying the status filter. Events with
// unparseable dates are dropped silently; relative input order is preserved
// within each bucket.
func Bucketize(events []CalendarEvent, filter StatusFilter) Buckets {
	buckets := make(Buckets)
	for _, e := range events {
		key, ok := EventDayKey(e)
		if !ok {
			continue
		}
		if !filter.Allows(e.Status) {
			continue
		}
		buckets[key] = append(buckets[key], e)
	}
	return buckets
}

// Day returns the bucket for a day-key, or an empty slice.
func (b Buckets) Day(key string) []CalendarEvent {
	return b[key]
}

// Days returns all non-empty day-keys in ascending order.
func (b Buckets) Days() []string {
	keys := make([]string, 0, len(b))
	for key := range b {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the total number of bucketed events.
func (b Buckets) Count() int {
	total := 0
	for _, events := range b {
		total += len(events)
	}
	return total
}
