package command

import (
	"context"
	"fmt"
	"log"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/calendar"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/repository"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/bus"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// CreateBookingWithUoWHandler handles create booking commands with Unit of Work
type CreateBookingWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewCreateBookingWithUoWHandler creates a new create booking handler with UoW
func NewCreateBookingWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *CreateBookingWithUoWHandler {
	return &CreateBookingWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the create booking command
func (h *CreateBookingWithUoWHandler) Handle(ctx context.Context, cmd *CreateBooking) (string, error) {
	if cmd == nil {
		return "", errors.NewValidationError("command cannot be nil")
	}

	if cmd.CustomerID == "" {
		return "", errors.NewValidationError("customer_id is required")
	}
	if cmd.ProviderID == "" {
		return "", errors.NewValidationError("provider_id is required")
	}
	if cmd.ServiceID == "" {
		return "", errors.NewValidationError("service_id is required")
	}
	if cmd.ServiceDate == "" {
		return "", errors.NewValidationError("service_date is required")
	}

	serviceDate, ok := calendar.NormalizeDate(cmd.ServiceDate)
	if !ok {
		return "", errors.NewValidationError(fmt.Sprintf("invalid service_date format: %s", cmd.ServiceDate))
	}

	customer := aggregate.BookingCustomer{
		UserID:  cmd.CustomerID,
		Name:    cmd.Customer.Name,
		Email:   cmd.Customer.Email,
		Phone:   cmd.Customer.Phone,
		Address: cmd.Customer.Address,
	}

	provider := aggregate.BookingProvider{
		ProviderID: cmd.ProviderID,
		Name:       cmd.Provider.Name,
		City:       cmd.Provider.City,
		Phone:      cmd.Provider.Phone,
	}

	service := aggregate.BookedService{
		ServiceID: cmd.ServiceID,
		Title:     cmd.Service.Title,
		Category:  cmd.Service.Category,
		Price:     cmd.Service.Price,
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return "", errors.NewInternalError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	booking, err := aggregate.NewBooking(customer, provider, service, serviceDate, cmd.BookingTime, cmd.Note)
	if err != nil {
		uow.Rollback(ctx)
		return "", errors.NewValidationError(fmt.Sprintf("failed to create booking: %v", err))
	}

	events := booking.GetUncommittedEvents()

	bookingRepo := uow.BookingRepository()
	if err := bookingRepo.Save(ctx, booking); err != nil {
		uow.Rollback(ctx)
		return "", errors.NewInternalError(fmt.Sprintf("failed to save booking: %v", err))
	}

	if err := h.eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish booking events: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return "", errors.NewInternalError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return booking.ID(), nil
}

// ChangeBookingStatusWithUoWHandler handles booking status changes with Unit of Work
type ChangeBookingStatusWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewChangeBookingStatusWithUoWHandler creates a new change booking status handler with UoW
func NewChangeBookingStatusWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *ChangeBookingStatusWithUoWHandler {
	return &ChangeBookingStatusWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the change booking status command
func (h *ChangeBookingStatusWithUoWHandler) Handle(ctx context.Context, cmd *ChangeBookingStatus) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.BookingID == "" {
		return errors.NewValidationError("booking_id is required")
	}

	newStatus := aggregate.BookingStatus(calendar.NormalizeStatus(cmd.NewStatus))
	if !newStatus.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid status: %s", cmd.NewStatus))
	}

	return h.mutateBooking(ctx, cmd.BookingID, func(booking *aggregate.Booking) error {
		return booking.ChangeStatus(newStatus)
	})
}

func (h *ChangeBookingStatusWithUoWHandler) mutateBooking(ctx context.Context, bookingID string, mutate func(*aggregate.Booking) error) error {
	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	bookingRepo := uow.BookingRepository()
	booking, err := bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		uow.Rollback(ctx)
		return errors.NewNotFoundError(fmt.Sprintf("booking not found: %s", bookingID))
	}

	if err := mutate(booking); err != nil {
		uow.Rollback(ctx)
		return errors.NewConflictError(err.Error())
	}

	events := booking.GetUncommittedEvents()

	if err := bookingRepo.Save(ctx, booking); err != nil {
		uow.Rollback(ctx)
		return errors.NewInternalError(fmt.Sprintf("failed to save booking: %v", err))
	}

	if err := h.eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish booking events: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return nil
}

// RescheduleBookingWithUoWHandler handles booking reschedules with Unit of Work
type RescheduleBookingWithUoWHandler struct {
	statusHandler *ChangeBookingStatusWithUoWHandler
}

// NewRescheduleBookingWithUoWHandler creates a new reschedule booking handler with UoW
func NewRescheduleBookingWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *RescheduleBookingWithUoWHandler {
	return &RescheduleBookingWithUoWHandler{
		statusHandler: NewChangeBookingStatusWithUoWHandler(uowFactory, eventBus),
	}
}

// Handle processes the reschedule booking command
func (h *RescheduleBookingWithUoWHandler) Handle(ctx context.Context, cmd *RescheduleBooking) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.BookingID == "" {
		return errors.NewValidationError("booking_id is required")
	}

	serviceDate, ok := calendar.NormalizeDate(cmd.ServiceDate)
	if !ok {
		return errors.NewValidationError(fmt.Sprintf("invalid service_date format: %s", cmd.ServiceDate))
	}

	return h.statusHandler.mutateBooking(ctx, cmd.BookingID, func(booking *aggregate.Booking) error {
		return booking.Reschedule(serviceDate, cmd.BookingTime)
	})
}

// CancelBookingWithUoWHandler handles booking cancellations with Unit of Work
type CancelBookingWithUoWHandler struct {
	statusHandler *ChangeBookingStatusWithUoWHandler
}

// NewCancelBookingWithUoWHandler creates a new cancel booking handler with UoW
func NewCancelBookingWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *CancelBookingWithUoWHandler {
	return &CancelBookingWithUoWHandler{
		statusHandler: NewChangeBookingStatusWithUoWHandler(uowFactory, eventBus),
	}
}

// Handle processes the cancel booking command
func (h *CancelBookingWithUoWHandler) Handle(ctx context.Context, cmd *CancelBooking) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.BookingID == "" {
		return errors.NewValidationError("booking_id is required")
	}

	return h.statusHandler.mutateBooking(ctx, cmd.BookingID, func(booking *aggregate.Booking) error {
		return booking.Cancel(cmd.Reason)
	})
}

// CompleteBookingWithUoWHandler handles booking completion with Unit of Work
type CompleteBookingWithUoWHandler struct {
	statusHandler *ChangeBookingStatusWithUoWHandler
}

// NewCompleteBookingWithUoWHandler creates a new complete booking handler with UoW
func NewCompleteBookingWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *CompleteBookingWithUoWHandler {
	return &CompleteBookingWithUoWHandler{
		statusHandler: NewChangeBookingStatusWithUoWHandler(uowFactory, eventBus),
	}
}

// Handle processes the complete booking command
func (h *CompleteBookingWithUoWHandler) Handle(ctx context.Context, cmd *CompleteBooking) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.BookingID == "" {
		return errors.NewValidationError("booking_id is required")
	}

	return h.statusHandler.mutateBooking(ctx, cmd.BookingID, func(booking *aggregate.Booking) error {
		return booking.Complete()
	})
}
