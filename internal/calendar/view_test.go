package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []CalendarEvent {
	return []CalendarEvent{
		{ID: "a", Date: "2024-08-10", Status: "pending", Time: "10:00"},
		{ID: "b", Date: "2024-08-10", Status: "confirmed", Time: "14:00"},
		{ID: "c", Date: "2024-08-11", Status: "completed"},
	}
}

func TestSelectionRoundTripMatchesBucketing(t *testing.T) {
	view := NewView(sampleEvents(), Options{InitialDate: "2024-08-10"})

	// The day-key used for selection lookup must be the one used during
	// bucketing, so selecting a date with events returns exactly those
	// events in input order.
	selected := view.SelectedEvents()
	require.Len(t, selected, 2)
	assert.Equal(t, "a", selected[0].ID)
	assert.Equal(t, "b", selected[1].ID)
}

func TestSelectDateOnEmptyDayYieldsNoEvents(t *testing.T) {
	view := NewView(sampleEvents(), Options{InitialDate: "2024-08-10"})

	view.SelectDate("2024-08-12")

	key, ok := view.SelectedDay()
	require.True(t, ok)
	assert.Equal(t, "2024-08-12", key)
	assert.Empty(t, view.SelectedEvents())
}

func TestReselectingReplacesPriorSelection(t *testing.T) {
	view := NewView(sampleEvents(), Options{InitialDate: "2024-08-10"})
	require.Len(t, view.SelectedEvents(), 2)

	view.SelectDate("2024-08-11")

	// Fully replaced, not merged with the previous day's list.
	selected := view.SelectedEvents()
	require.Len(t, selected, 1)
	assert.Equal(t, "c", selected[0].ID)
}

func TestSelectDateIgnoresUnparseableInput(t *testing.T) {
	view := NewView(sampleEvents(), Options{InitialDate: "2024-08-10"})

	view.SelectDate("not-a-date")

	key, ok := view.SelectedDay()
	require.True(t, ok)
	assert.Equal(t, "2024-08-10", key)
}

func TestSelectDateFiresCallback(t *testing.T) {
	var got time.Time
	view := NewView(sampleEvents(), Options{
		InitialDate:  "2024-08-10",
		OnSelectDate: func(d time.Time) { got = d },
	})

	view.SelectDate("2024-08-11")

	assert.Equal(t, "2024-08-11", DayKey(got))
}

func TestSelectEventFiresCallback(t *testing.T) {
	var picked CalendarEvent
	view := NewView(sampleEvents(), Options{
		InitialDate:   "2024-08-10",
		OnSelectEvent: func(e CalendarEvent) { picked = e },
	})

	e, ok := view.SelectEvent("b")
	require.True(t, ok)
	assert.Equal(t, "b", e.ID)
	assert.Equal(t, "b", picked.ID)

	_, ok = view.SelectEvent("c") // on another day
	assert.False(t, ok)
}

func TestSetStatusFilterRecomputesBuckets(t *testing.T) {
	view := NewView(sampleEvents(), Options{InitialDate: "2024-08-10"})
	require.Len(t, view.SelectedEvents(), 2)

	view.SetStatusFilter([]string{"pending"})
	selected := view.SelectedEvents()
	require.Len(t, selected, 1)
	assert.Equal(t, "a", selected[0].ID)

	view.SetStatusFilter(nil)
	assert.Len(t, view.SelectedEvents(), 2)
}

func TestSetEventsRecomputesBuckets(t *testing.T) {
	view := NewView(sampleEvents(), Options{InitialDate: "2024-08-10"})
	require.Len(t, view.SelectedEvents(), 2)

	view.SetEvents([]CalendarEvent{{ID: "z", Date: "2024-08-10", Status: "disputed"}})

	selected := view.SelectedEvents()
	require.Len(t, selected, 1)
	assert.Equal(t, "z", selected[0].ID)
}

func TestMonthCellsGrid(t *testing.T) {
	view := NewView(sampleEvents(), Options{InitialDate: "2024-08-10"})
	view.now = func() time.Time {
		return time.Date(2024, time.August, 11, 9, 0, 0, 0, time.Local)
	}

	cells := view.MonthCells(2024, time.August)

	// August 2024 starts on a Thursday and ends on a Saturday: the squared
	// grid runs Sun Jul 28 through Sat Aug 31, five full weeks.
	require.Len(t, cells, 35)
	assert.Equal(t, "2024-07-28", cells[0].Key)
	assert.False(t, cells[0].InMonth)
	assert.Equal(t, "2024-08-31", cells[len(cells)-1].Key)

	byKey := make(map[string]DayCell, len(cells))
	for _, c := range cells {
		byKey[c.Key] = c
	}

	aug10 := byKey["2024-08-10"]
	assert.True(t, aug10.InMonth)
	assert.True(t, aug10.Selected)
	assert.Equal(t, 2, aug10.Count)
	assert.Len(t, aug10.Indicators, 2)

	aug11 := byKey["2024-08-11"]
	assert.True(t, aug11.Today)
	assert.Equal(t, 1, aug11.Count)

	aug12 := byKey["2024-08-12"]
	assert.Zero(t, aug12.Count)
	assert.Empty(t, aug12.Indicators)
}
