package query

import (
	"context"
	"fmt"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// BookingProjection interface for the booking read model
type BookingProjection interface {
	GetByID(ctx context.Context, id string) (*projection.BookingReadModel, error)
	GetByCustomerID(ctx context.Context, customerID string, offset, limit int) ([]projection.BookingReadModel, error)
	GetByProviderID(ctx context.Context, providerID string, offset, limit int) ([]projection.BookingReadModel, error)
	GetByDateRange(ctx context.Context, from, to time.Time, customerID, providerID string) ([]projection.BookingReadModel, error)
	ListAll(ctx context.Context, offset, limit int) ([]projection.BookingReadModel, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// GetBookingHandler handles get booking by ID queries
type GetBookingHandler struct {
	projection BookingProjection
}

// NewGetBookingHandler creates a new get booking handler
func NewGetBookingHandler(projection BookingProjection) *GetBookingHandler {
	return &GetBookingHandler{
		projection: projection,
	}
}

// Handle processes the get booking query
func (h *GetBookingHandler) Handle(ctx context.Context, bookingID string) (*projection.BookingReadModel, error) {
	if bookingID == "" {
		return nil, errors.NewValidationError("booking_id is required")
	}

	booking, err := h.projection.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errors.NewNotFoundError("booking")
	}

	return booking, nil
}

// ListCustomerBookingsHandler handles list customer bookings queries
type ListCustomerBookingsHandler struct {
	projection BookingProjection
}

// NewListCustomerBookingsHandler creates a new list customer bookings handler
func NewListCustomerBookingsHandler(projection BookingProjection) *ListCustomerBookingsHandler {
	return &ListCustomerBookingsHandler{
		projection: projection,
	}
}

// Handle processes the list customer bookings query
func (h *ListCustomerBookingsHandler) Handle(ctx context.Context, customerID string, offset, limit int) ([]projection.BookingReadModel, error) {
	if customerID == "" {
		return nil, errors.NewValidationError("customer_id is required")
	}

	if limit == 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	bookings, err := h.projection.GetByCustomerID(ctx, customerID, offset, limit)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to list customer bookings: %v", err))
	}

	return bookings, nil
}

// ListProviderBookingsHandler handles list provider bookings queries
type ListProviderBookingsHandler struct {
	projection BookingProjection
}

// NewListProviderBookingsHandler creates a new list provider bookings handler
func NewListProviderBookingsHandler(projection BookingProjection) *ListProviderBookingsHandler {
	return &ListProviderBookingsHandler{
		projection: projection,
	}
}

// Handle processes the list provider bookings query
func (h *ListProviderBookingsHandler) Handle(ctx context.Context, providerID string, offset, limit int) ([]projection.BookingReadModel, error) {
	if providerID == "" {
		return nil, errors.NewValidationError("provider_id is required")
	}

	if limit == 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	bookings, err := h.projection.GetByProviderID(ctx, providerID, offset, limit)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to list provider bookings: %v", err))
	}

	return bookings, nil
}

// ListAllBookingsHandler handles admin listing of all bookings
type ListAllBookingsHandler struct {
	projection BookingProjection
}

// NewListAllBookingsHandler creates a new list all bookings handler
func NewListAllBookingsHandler(projection BookingProjection) *ListAllBookingsHandler {
	return &ListAllBookingsHandler{
		projection: projection,
	}
}

// Handle processes the list all bookings query
func (h *ListAllBookingsHandler) Handle(ctx context.Context, offset, limit int) ([]projection.BookingReadModel, error) {
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	bookings, err := h.projection.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to list bookings: %v", err))
	}

	return bookings, nil
}
