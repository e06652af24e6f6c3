package calendar

import "time"

// Options configures a View.
type Options struct {
	// InitialDate seeds the selection; nil or unparseable means today.
	InitialDate interface{}
	// Statuses restricts bucketing to the given labels; empty means all.
	Statuses []string
	// IndicatorSlots caps visible status badges per day cell.
	IndicatorSlots int
	// OnSelectDate fires after a successful day selection.
	OnSelectDate func(time.Time)
	// OnSelectEvent fires when an event is picked from the selected day.
	OnSelectEvent func(CalendarEvent)
}

// View coordinates the bucketizer, selection state and render adapter for one
// calendar instance. The bucket map is a derived value memoized on the
// (events, filter) pair and recomputed, never mutated, when either changes.
type View struct {
	events    []CalendarEvent
	filter    StatusFilter
	slots     int
	selection Selection

	onSelectDate  func(time.Time)
	onSelectEvent func(CalendarEvent)

	buckets Buckets
	stale   bool

	now func() time.Time
}

// NewView builds a view over the given events.
func NewView(events []CalendarEvent, opts Options) *View {
	slots := opts.IndicatorSlots
	if slots <= 0 {
		slots = DefaultIndicatorSlots
	}
	return &View{
		events:        events,
		filter:        NewStatusFilter(opts.Statuses...),
		slots:         slots,
		selection:     NewSelection(opts.InitialDate),
		onSelectDate:  opts.OnSelectDate,
		onSelectEvent: opts.OnSelectEvent,
		stale:         true,
		now:           time.Now,
	}
}

// Buckets returns the derived day-key map, recomputing it only after the
// event list or filter changed.
func (v *View) Buckets() Buckets {
	if v.stale {
		v.buckets = Bucketize(v.events, v.filter)
		v.stale = false
	}
	return v.buckets
}

// SetEvents replaces the input event list and invalidates the derived map.
func (v *View) SetEvents(events []CalendarEvent) {
	v.events = events
	v.stale = true
}

// SetStatusFilter replaces the active status set and invalidates the derived
// map. An empty list clears filtering.
func (v *View) SetStatusFilter(statuses []string) {
	v.filter = NewStatusFilter(statuses...)
	v.stale = true
}

// SelectDate focuses the given day, replacing any prior selection, and fires
// the OnSelectDate callback. Unparseable dates leave the selection as is.
func (v *View) SelectDate(date interface{}) {
	t, ok := NormalizeDate(date)
	if !ok {
		return
	}
	v.selection = v.selection.Select(t)
	if v.onSelectDate != nil {
		v.onSelectDate(t)
	}
}

// SelectedDay returns the focused day-key, if any.
func (v *View) SelectedDay() (string, bool) {
	return v.selection.DayKey()
}

// SelectedEvents returns the focused day's events in input order, or an
// empty sequence.
func (v *View) SelectedEvents() []CalendarEvent {
	return v.selection.EventsIn(v.Buckets())
}

// SelectEvent picks an event from the focused day by ID and fires the
// OnSelectEvent callback.
func (v *View) SelectEvent(id string) (CalendarEvent, bool) {
	for _, e := range v.SelectedEvents() {
		if e.ID == id {
			if v.onSelectEvent != nil {
				v.onSelectEvent(e)
			}
			return e, true
		}
	}
	return CalendarEvent{}, false
}

// DayCell is one cell of the month grid.
type DayCell struct {
	Key        string      `json:"key"`
	Day        int         `json:"day"`
	InMonth    bool        `json:"in_month"`
	Today      bool        `json:"today"`
	Selected   bool        `json:"selected"`
	Count      int         `json:"count"`
	Indicators []Indicator `json:"indicators,omitempty"`
}

// MonthCells lays the month out as full weeks starting on Sunday, including
// the leading and trailing out-of-month days needed to square the grid.
func (v *View) MonthCells(year int, month time.Month) []DayCell {
	buckets := v.Buckets()
	todayKey := DayKey(v.now())
	selectedKey, _ := v.selection.DayKey()

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	var cells []DayCell
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		key := DayKey(d)
		events := buckets.Day(key)
		cells = append(cells, DayCell{
			Key:        key,
			Day:        d.Day(),
			InMonth:    d.Month() == month,
			Today:      key == todayKey,
			Selected:   key == selectedKey,
			Count:      len(events),
			Indicators: DayIndicators(events, v.slots),
		})
	}
	return cells
}
