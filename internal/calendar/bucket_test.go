package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketizeGroupsByLocalDayKey(t *testing.T) {
	events := []CalendarEvent{
		{ID: "1", Date: "2024-08-10", Status: "pending"},
		{ID: "2", Date: time.Date(2024, time.August, 10, 14, 30, 0, 0, time.Local), Status: "confirmed"},
		{ID: "3", Date: "2024-08-11", Status: "completed"},
	}

	buckets := Bucketize(events, nil)

	require.Len(t, buckets, 2)
	require.Len(t, buckets.Day("2024-08-10"), 2)
	assert.Equal(t, "1", buckets.Day("2024-08-10")[0].ID)
	assert.Equal(t, "2", buckets.Day("2024-08-10")[1].ID)
	require.Len(t, buckets.Day("2024-08-11"), 1)
	assert.Equal(t, "3", buckets.Day("2024-08-11")[0].ID)
}

func TestBucketizeDropsUnparseableDates(t *testing.T) {
	events := []CalendarEvent{
		{ID: "good", Date: "2024-08-10"},
		{ID: "bad", Date: "not-a-date"},
		{ID: "nil", Date: nil},
		{ID: "zero", Date: time.Time{}},
	}

	var buckets Buckets
	require.NotPanics(t, func() {
		buckets = Bucketize(events, nil)
	})

	assert.Equal(t, 1, buckets.Count())
	for _, key := range buckets.Days() {
		for _, e := range buckets.Day(key) {
			assert.Equal(t, "good", e.ID)
		}
	}
}

func TestBucketizeAppliesStatusFilter(t *testing.T) {
	events := []CalendarEvent{
		{ID: "1", Date: "2024-08-10", Status: "pending"},
		{ID: "2", Date: "2024-08-10", Status: "confirmed"},
		{ID: "3", Date: "2024-08-11", Status: "Pending"},
		{ID: "4", Date: "2024-08-11", Status: "cancelled"},
	}

	buckets := Bucketize(events, NewStatusFilter("pending"))

	assert.Equal(t, 2, buckets.Count())
	for _, key := range buckets.Days() {
		for _, e := range buckets.Day(key) {
			assert.Equal(t, "pending", NormalizeStatus(e.Status))
		}
	}
}

func TestBucketizeTreatsMissingStatusAsPendingUnderActiveFilter(t *testing.T) {
	events := []CalendarEvent{
		{ID: "1", Date: "2024-08-10"},
		{ID: "2", Date: "2024-08-10", Status: "confirmed"},
	}

	pendingOnly := Bucketize(events, NewStatusFilter("pending"))
	require.Len(t, pendingOnly.Day("2024-08-10"), 1)
	assert.Equal(t, "1", pendingOnly.Day("2024-08-10")[0].ID)

	// Without an active filter the statusless event passes through as well.
	unfiltered := Bucketize(events, nil)
	assert.Len(t, unfiltered.Day("2024-08-10"), 2)
}

func TestStatusFilterCollapsesSynonyms(t *testing.T) {
	filter := NewStatusFilter("Awaiting Confirmation")

	assert.True(t, filter.Allows("awaiting_confirmation"))
	assert.True(t, filter.Allows("awaiting confirmation"))
	assert.False(t, filter.Allows("confirmed"))
}

func TestNormalizeDatePlainDateKeepsLocalDay(t *testing.T) {
	parsed, ok := NormalizeDate("2024-08-10")
	require.True(t, ok)

	// A plain date must resolve to the same calendar day regardless of the
	// host timezone; a UTC round-trip would shift it near day boundaries.
	assert.Equal(t, "2024-08-10", DayKey(parsed))
}

func TestNormalizeDateConvertsUTCTimesToLocalDay(t *testing.T) {
	// The mongo driver decodes stored dates in UTC. A local midnight viewed
	// as a UTC instant must still bucket under its local calendar day.
	local := time.Date(2024, time.August, 10, 0, 0, 0, 0, time.Local)

	utcValue := local.UTC()
	parsed, ok := NormalizeDate(utcValue)
	require.True(t, ok)
	assert.Equal(t, "2024-08-10", DayKey(parsed))

	parsedPtr, ok := NormalizeDate(&utcValue)
	require.True(t, ok)
	assert.Equal(t, "2024-08-10", DayKey(parsedPtr))

	stringKey, ok := EventDayKey(CalendarEvent{ID: "s", Date: "2024-08-10"})
	require.True(t, ok)
	utcKey, ok := EventDayKey(CalendarEvent{ID: "t", Date: utcValue})
	require.True(t, ok)
	assert.Equal(t, stringKey, utcKey)
}

func TestBucketizeUTCAndStringDatesShareBucket(t *testing.T) {
	local := time.Date(2024, time.August, 10, 0, 0, 0, 0, time.Local)
	events := []CalendarEvent{
		{ID: "from-string", Date: "2024-08-10"},
		{ID: "from-store", Date: local.UTC()},
	}

	buckets := Bucketize(events, nil)

	require.Equal(t, 1, buckets.Count())
	day := buckets.Day("2024-08-10")
	require.Len(t, day, 2)
	assert.Equal(t, "from-string", day[0].ID)
	assert.Equal(t, "from-store", day[1].ID)
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, input := range []interface{}{"", "  ", "2024-13-45x", "tomorrow", 42, nil} {
		_, ok := NormalizeDate(input)
		assert.False(t, ok, "input %v", input)
	}
}

func TestSortEventsByTimeUnparseableSortLast(t *testing.T) {
	events := []CalendarEvent{
		{ID: "noon", Time: "12:00"},
		{ID: "blank"},
		{ID: "morning", Time: "09:15"},
		{ID: "weird", Time: "late-ish"},
		{ID: "afternoon", Time: "2:30 PM"},
	}

	sorted := SortEventsByTime(events)

	var ids []string
	for _, e := range sorted {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"morning", "noon", "afternoon", "blank", "weird"}, ids)

	// Input slice is untouched.
	assert.Equal(t, "noon", events[0].ID)
}
