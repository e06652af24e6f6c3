package services

import (
	"context"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/query"
)

// CalendarService exposes the booking month view
type CalendarService struct {
	getBookingCalendarHandler *query.GetBookingCalendarHandler
}

// NewCalendarService creates a new calendar service
func NewCalendarService(getBookingCalendarHandler *query.GetBookingCalendarHandler) *CalendarService {
	return &CalendarService{
		getBookingCalendarHandler: getBookingCalendarHandler,
	}
}

// GetBookingCalendar builds the month view for the given query
func (s *CalendarService) GetBookingCalendar(ctx context.Context, q *query.GetBookingCalendar) (*query.BookingCalendarResult, error) {
	return s.getBookingCalendarHandler.Handle(ctx, q)
}
