package services

import (
	"context"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/command"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/query"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
)

// BookingService handles booking operations
type BookingService struct {
	createBookingHandler        *command.CreateBookingWithUoWHandler
	changeBookingStatusHandler  *command.ChangeBookingStatusWithUoWHandler
	rescheduleBookingHandler    *command.RescheduleBookingWithUoWHandler
	cancelBookingHandler        *command.CancelBookingWithUoWHandler
	completeBookingHandler      *command.CompleteBookingWithUoWHandler
	getBookingHandler           *query.GetBookingHandler
	listCustomerBookingsHandler *query.ListCustomerBookingsHandler
	listProviderBookingsHandler *query.ListProviderBookingsHandler
	listAllBookingsHandler      *query.ListAllBookingsHandler
}

// NewBookingService creates a new booking service
func NewBookingService(
	createBookingHandler *command.CreateBookingWithUoWHandler,
	changeBookingStatusHandler *command.ChangeBookingStatusWithUoWHandler,
	rescheduleBookingHandler *command.RescheduleBookingWithUoWHandler,
	cancelBookingHandler *command.CancelBookingWithUoWHandler,
	completeBookingHandler *command.CompleteBookingWithUoWHandler,
	getBookingHandler *query.GetBookingHandler,
	listCustomerBookingsHandler *query.ListCustomerBookingsHandler,
	listProviderBookingsHandler *query.ListProviderBookingsHandler,
	listAllBookingsHandler *query.ListAllBookingsHandler,
) *BookingService {
	return &BookingService{
		createBookingHandler:        createBookingHandler,
		changeBookingStatusHandler:  changeBookingStatusHandler,
		rescheduleBookingHandler:    rescheduleBookingHandler,
		cancelBookingHandler:        cancelBookingHandler,
		completeBookingHandler:      completeBookingHandler,
		getBookingHandler:           getBookingHandler,
		listCustomerBookingsHandler: listCustomerBookingsHandler,
		listProviderBookingsHandler: listProviderBookingsHandler,
		listAllBookingsHandler:      listAllBookingsHandler,
	}
}

// CreateBooking creates a new booking and returns its ID
func (s *BookingService) CreateBooking(ctx context.Context, cmd *command.CreateBooking) (string, error) {
	return s.createBookingHandler.Handle(ctx, cmd)
}

// ChangeBookingStatus changes the status of a booking
func (s *BookingService) ChangeBookingStatus(ctx context.Context, cmd *command.ChangeBookingStatus) error {
	return s.changeBookingStatusHandler.Handle(ctx, cmd)
}

// RescheduleBooking moves a booking to a new date and time
func (s *BookingService) RescheduleBooking(ctx context.Context, cmd *command.RescheduleBooking) error {
	return s.rescheduleBookingHandler.Handle(ctx, cmd)
}

// CancelBooking cancels a booking
func (s *BookingService) CancelBooking(ctx context.Context, cmd *command.CancelBooking) error {
	return s.cancelBookingHandler.Handle(ctx, cmd)
}

// CompleteBooking marks a booking as completed
func (s *BookingService) CompleteBooking(ctx context.Context, cmd *command.CompleteBooking) error {
	return s.completeBookingHandler.Handle(ctx, cmd)
}

// GetBooking retrieves a booking by ID
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*projection.BookingReadModel, error) {
	return s.getBookingHandler.Handle(ctx, bookingID)
}

// ListCustomerBookings retrieves bookings for a customer with pagination
func (s *BookingService) ListCustomerBookings(ctx context.Context, customerID string, offset, limit int) ([]projection.BookingReadModel, error) {
	return s.listCustomerBookingsHandler.Handle(ctx, customerID, offset, limit)
}

// ListProviderBookings retrieves bookings for a provider with pagination
func (s *BookingService) ListProviderBookings(ctx context.Context, providerID string, offset, limit int) ([]projection.BookingReadModel, error) {
	return s.listProviderBookingsHandler.Handle(ctx, providerID, offset, limit)
}

// ListBookings retrieves all bookings with pagination
func (s *BookingService) ListBookings(ctx context.Context, offset, limit int) ([]projection.BookingReadModel, error) {
	return s.listAllBookingsHandler.Handle(ctx, offset, limit)
}
