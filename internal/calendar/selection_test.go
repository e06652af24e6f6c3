package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectionDefaultsToToday(t *testing.T) {
	sel := NewSelection(nil)

	key, ok := sel.DayKey()
	require.True(t, ok)
	assert.Equal(t, DayKey(time.Now()), key)
}

func TestSelectionSelectReplaces(t *testing.T) {
	sel := NewSelection("2024-08-10")
	sel = sel.Select("2024-08-11")

	key, ok := sel.DayKey()
	require.True(t, ok)
	assert.Equal(t, "2024-08-11", key)
}

func TestSelectionClear(t *testing.T) {
	sel := NewSelection("2024-08-10").Clear()

	_, ok := sel.DayKey()
	assert.False(t, ok)
	assert.Empty(t, sel.EventsIn(Buckets{"2024-08-10": {{ID: "a"}}}))
}

func TestSelectionEventsInMissingDay(t *testing.T) {
	sel := NewSelection("2024-08-12")
	assert.Empty(t, sel.EventsIn(Buckets{"2024-08-10": {{ID: "a"}}}))
}
