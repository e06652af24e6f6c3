package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleForKnownAndUnknownStatuses(t *testing.T) {
	assert.Equal(t, "status-pending", StyleFor("pending").Class)
	assert.Equal(t, "status-pending", StyleFor("  PENDING ").Class)
	assert.Equal(t, "status-awaiting", StyleFor("awaiting confirmation").Class)
	assert.Equal(t, "status-cancelled", StyleFor("canceled").Class)

	// Unrecognized statuses get the neutral fallback, never an error.
	assert.Equal(t, "status-neutral", StyleFor("something-else").Class)
}

func TestDayIndicatorsUnderSlotCap(t *testing.T) {
	events := []CalendarEvent{
		{ID: "1", Status: "pending"},
		{ID: "2", Status: "pending"},
		{ID: "3", Status: "confirmed"},
	}

	indicators := DayIndicators(events, 3)

	require.Len(t, indicators, 2)
	assert.Equal(t, "pending", indicators[0].Status)
	assert.Equal(t, 2, indicators[0].Count)
	assert.Equal(t, "confirmed", indicators[1].Status)
	assert.Equal(t, 1, indicators[1].Count)
	for _, in := range indicators {
		assert.False(t, in.Overflow)
	}
}

func TestDayIndicatorsOverflowSumsRemainingStatuses(t *testing.T) {
	// 4 distinct statuses against a cap of 3: the fourth and fifth groups
	// collapse into one overflow badge counting their events.
	events := []CalendarEvent{
		{ID: "1", Status: "pending"},
		{ID: "2", Status: "confirmed"},
		{ID: "3", Status: "completed"},
		{ID: "4", Status: "cancelled"},
		{ID: "5", Status: "cancelled"},
		{ID: "6", Status: "disputed"},
	}

	indicators := DayIndicators(events, 3)

	require.Len(t, indicators, 4)
	assert.Equal(t, "pending", indicators[0].Status)
	assert.Equal(t, "confirmed", indicators[1].Status)
	assert.Equal(t, "completed", indicators[2].Status)

	overflow := indicators[3]
	assert.True(t, overflow.Overflow)
	assert.Equal(t, 3, overflow.Count)
	assert.Equal(t, "+3", overflow.Status)
}

func TestDayIndicatorsStatuslessEventsCountAsPending(t *testing.T) {
	events := []CalendarEvent{
		{ID: "1"},
		{ID: "2", Status: "pending"},
	}

	indicators := DayIndicators(events, 3)

	require.Len(t, indicators, 1)
	assert.Equal(t, "pending", indicators[0].Status)
	assert.Equal(t, 2, indicators[0].Count)
}

func TestDayIndicatorsEmpty(t *testing.T) {
	assert.Nil(t, DayIndicators(nil, 3))
}
