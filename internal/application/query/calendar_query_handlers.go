package query

import (
	"context"
	"fmt"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/calendar"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// GetBookingCalendar query for a month of bookings rendered as a calendar
type GetBookingCalendar struct {
	Year         int
	Month        int
	CustomerID   string
	ProviderID   string
	Statuses     []string
	SelectedDate string
}

// BookingCalendarResult is the month view returned to dashboard clients
type BookingCalendarResult struct {
	Year           int                      `json:"year"`
	Month          int                      `json:"month"`
	Cells          []calendar.DayCell       `json:"cells"`
	SelectedDay    string                   `json:"selected_day,omitempty"`
	SelectedEvents []calendar.CalendarEvent `json:"selected_events"`
}

// GetBookingCalendarHandler builds the booking month view from the read model
type GetBookingCalendarHandler struct {
	projection BookingProjection
}

// NewGetBookingCalendarHandler creates a new booking calendar handler
func NewGetBookingCalendarHandler(projection BookingProjection) *GetBookingCalendarHandler {
	return &GetBookingCalendarHandler{
		projection: projection,
	}
}

// Handle processes the booking calendar query
func (h *GetBookingCalendarHandler) Handle(ctx context.Context, q *GetBookingCalendar) (*BookingCalendarResult, error) {
	if q == nil {
		return nil, errors.NewValidationError("query cannot be nil")
	}
	if q.Year < 1970 || q.Year > 9999 {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid year: %d", q.Year))
	}
	if q.Month < 1 || q.Month > 12 {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid month: %d", q.Month))
	}

	// The grid pads the month out to full weeks, so load a week on each side
	monthStart := time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, time.Local)
	from := monthStart.AddDate(0, 0, -7)
	to := monthStart.AddDate(0, 1, 7)

	bookings, err := h.projection.GetByDateRange(ctx, from, to, q.CustomerID, q.ProviderID)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to load bookings: %v", err))
	}

	events := make([]calendar.CalendarEvent, 0, len(bookings))
	for _, b := range bookings {
		events = append(events, BookingToCalendarEvent(b))
	}

	view := calendar.NewView(events, calendar.Options{
		InitialDate: initialDate(q.SelectedDate),
		Statuses:    q.Statuses,
	})

	result := &BookingCalendarResult{
		Year:           q.Year,
		Month:          q.Month,
		Cells:          view.MonthCells(q.Year, time.Month(q.Month)),
		SelectedEvents: view.SelectedEvents(),
	}
	if day, ok := view.SelectedDay(); ok {
		result.SelectedDay = day
	}
	if result.SelectedEvents == nil {
		result.SelectedEvents = []calendar.CalendarEvent{}
	}

	return result, nil
}

func initialDate(selected string) interface{} {
	if selected == "" {
		return nil
	}
	return selected
}

// BookingToCalendarEvent maps a booking read model onto a calendar event
func BookingToCalendarEvent(b projection.BookingReadModel) calendar.CalendarEvent {
	return calendar.CalendarEvent{
		ID:       b.ID,
		Date:     b.ServiceDate,
		Time:     b.BookingTime,
		Title:    b.Service.Title,
		Category: b.Service.Category,
		Status:   b.Status,
		Meta: map[string]interface{}{
			"customer_id":   b.CustomerID,
			"provider_id":   b.ProviderID,
			"service_id":    b.ServiceID,
			"customer_name": b.Customer.Name,
			"provider_name": b.Provider.Name,
			"price":         b.Service.Price,
		},
	}
}
