package calendar

import (
	"fmt"
	"strings"
)

// DefaultIndicatorSlots caps how many distinct status badges a day cell shows
// before the rest collapse into a single overflow indicator.
const DefaultIndicatorSlots = 3

// StatusStyle is the visual treatment for one status group.
type StatusStyle struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Class string `json:"class"`
}

// statusSynonyms collapses alternate spellings onto the canonical label.
var statusSynonyms = map[string]string{
	"awaiting confirmation": "awaiting_confirmation",
	"awaiting-confirmation": "awaiting_confirmation",
	"service delivered":     "service_delivered",
	"service-delivered":     "service_delivered",
	"canceled":              "cancelled",
}

var statusStyles = map[string]StatusStyle{
	"pending":               {Label: "Pending", Color: "#f59e0b", Class: "status-pending"},
	"confirmed":             {Label: "Confirmed", Color: "#3b82f6", Class: "status-confirmed"},
	"completed":             {Label: "Completed", Color: "#22c55e", Class: "status-completed"},
	"cancelled":             {Label: "Cancelled", Color: "#ef4444", Class: "status-cancelled"},
	"awaiting_confirmation": {Label: "Awaiting Confirmation", Color: "#f97316", Class: "status-awaiting"},
	"service_delivered":     {Label: "Service Delivered", Color: "#14b8a6", Class: "status-delivered"},
	"disputed":              {Label: "Disputed", Color: "#a855f7", Class: "status-disputed"},
}

// neutralStyle is the fallback for statuses without a registered treatment.
var neutralStyle = StatusStyle{Label: "Other", Color: "#9ca3af", Class: "status-neutral"}

// NormalizeStatus lowercases, trims and collapses known synonyms so that
// filtering and styling agree on one canonical label per status.
func NormalizeStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	if canonical, ok := statusSynonyms[s]; ok {
		return canonical
	}
	return s
}

// StyleFor returns the visual treatment for a raw status label. Unknown
// statuses get the neutral default rather than an error.
func StyleFor(status string) StatusStyle {
	if style, ok := statusStyles[NormalizeStatus(status)]; ok {
		return style
	}
	return neutralStyle
}

// Indicator is one status badge on a day cell. An overflow indicator stands
// in for every status group past the visible-slot cap; its Count is the
// summed event count of those groups.
type Indicator struct {
	Status   string      `json:"status"`
	Count    int         `json:"count"`
	Style    StatusStyle `json:"style"`
	Overflow bool        `json:"overflow,omitempty"`
}

// DayIndicators collapses a day's events into at most slots status badges
// plus, when needed, one "+N" overflow badge. Status groups appear in first-
// seen order. A non-positive slots falls back to DefaultIndicatorSlots.
func DayIndicators(events []CalendarEvent, slots int) []Indicator {
	if slots <= 0 {
		slots = DefaultIndicatorSlots
	}

	counts := make(map[string]int)
	var order []string
	for _, e := range events {
		status := NormalizeStatus(e.Status)
		if status == "" {
			status = DefaultStatus
		}
		if _, seen := counts[status]; !seen {
			order = append(order, status)
		}
		counts[status]++
	}

	if len(order) == 0 {
		return nil
	}

	if len(order) <= slots {
		indicators := make([]Indicator, 0, len(order))
		for _, status := range order {
			indicators = append(indicators, Indicator{
				Status: status,
				Count:  counts[status],
				Style:  StyleFor(status),
			})
		}
		return indicators
	}

	indicators := make([]Indicator, 0, slots+1)
	for _, status := range order[:slots] {
		indicators = append(indicators, Indicator{
			Status: status,
			Count:  counts[status],
			Style:  StyleFor(status),
		})
	}

	overflowCount := 0
	for _, status := range order[slots:] {
		overflowCount += counts[status]
	}
	indicators = append(indicators, Indicator{
		Status:   fmt.Sprintf("+%d", overflowCount),
		Count:    overflowCount,
		Style:    neutralStyle,
		Overflow: true,
	})
	return indicators
}
